package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tzwhen/internal/convert"
	"tzwhen/internal/nlp"
	"tzwhen/internal/refdata"
)

const defaultLayout = "02-Jan-2006 03:04:05 PM -0700"

var (
	formatFlag   string
	zoneFlags    []string
	offsetFlags  []string
	countryFlags []string
	baseFlag     string
	jsonOutput   bool
	debugFlag    bool

	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

var rootCmd = &cobra.Command{
	Use:   "tzwhen <phrase>",
	Short: "Resolve a natural-language date/time and convert it across zones",
	Long: `tzwhen turns a free-form phrase like "last Monday", "23rd July 8 PM"
or "+2.5h" into a concrete instant, optionally re-expressed in named
time zones, fixed UTC offsets, or every zone of a country.

Examples:
  tzwhen "Tuesday 8 PM" -z SGT -z Europe/London
  tzwhen "day after tomorrow" -o +8 -o -08:30
  tzwhen "23rd July 8 PM" -c Japan -f "2006-01-02 15:04"`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "output layout in Go reference time form")
	rootCmd.Flags().StringArrayVarP(&zoneFlags, "timezone", "z", nil, "target zone short code, name, or ID (repeatable)")
	rootCmd.Flags().StringArrayVarP(&offsetFlags, "offset", "o", nil, "target UTC offset: +8, +8.5, +08:30, -08:00 (repeatable)")
	rootCmd.Flags().StringArrayVarP(&countryFlags, "country", "c", nil, "target country name or ISO code (repeatable)")
	rootCmd.Flags().StringVar(&baseFlag, "base", "", "base instant as RFC3339 instead of now")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "debug logging")

	viper.SetDefault("format", defaultLayout)
	viper.SetEnvPrefix("tzwhen")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetConfigName(".tzwhen")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
}

type jsonOut struct {
	Input    string            `json:"input"`
	Resolved string            `json:"resolved"`
	UTC      string            `json:"utc"`
	Unix     int64             `json:"unix"`
	Targets  map[string]string `json:"targets,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	bindFlagDefaults(cmd)

	layout := formatFlag
	if layout == "" {
		layout = viper.GetString("format")
	}

	base := time.Now()
	if baseFlag != "" {
		t, err := time.Parse(time.RFC3339, baseFlag)
		if err != nil {
			return fmt.Errorf("parsing --base: %w", err)
		}
		base = t
	}

	data, err := refdata.Load()
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	if debugFlag {
		log.Printf("input: %q base: %s", input, base.Format(time.RFC3339))
	}

	result, err := nlp.New(data).Parse(input, base)
	if err != nil {
		return err
	}
	if debugFlag {
		log.Printf("resolved: %s", result.Time.Format(time.RFC3339))
	}

	zones := zoneFlags
	if result.Zone != nil {
		zones = append(zones, result.Zone.ID)
	}
	countries := countryFlags
	if result.Country != nil {
		countries = append(countries, result.Country.Name)
	}

	proj := convert.New()
	convert.Zones(proj, result.Time, layout, zones, data)
	if err := convert.Offsets(proj, result.Time, layout, offsetFlags); err != nil {
		return err
	}
	convert.Countries(proj, result.Time, layout, countries, data)

	if jsonOutput {
		out := jsonOut{
			Input:    input,
			Resolved: result.Time.Format(layout),
			UTC:      result.Time.UTC().Format(time.RFC3339),
			Unix:     result.Time.Unix(),
		}
		if len(proj.ByTarget) > 0 {
			out.Targets = make(map[string]string, len(proj.ByTarget))
			for target, t := range proj.ByTarget {
				out.Targets[target] = t.Format(layout)
			}
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	fmt.Println(resultStyle.Render(result.Time.Format(layout)))
	for _, line := range proj.Lines {
		label, rest, _ := strings.Cut(line, " : ")
		fmt.Printf("%s : %s\n", labelStyle.Render(label), rest)
	}
	return nil
}

// bindFlagDefaults lets config values back unset repeatable flags.
func bindFlagDefaults(cmd *cobra.Command) {
	if !cmd.Flags().Changed("timezone") {
		zoneFlags = viper.GetStringSlice("timezones")
	}
	if !cmd.Flags().Changed("offset") {
		offsetFlags = viper.GetStringSlice("offsets")
	}
	if !cmd.Flags().Changed("country") {
		countryFlags = viper.GetStringSlice("countries")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
