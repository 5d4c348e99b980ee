package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/ukaji3/wdichart-go/pkg/wdichart"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
)

// EnvPrefix prefixes environment overrides, e.g. WDICHART_OUT_DIR.
const EnvPrefix = "WDICHART"

type LoggerConfig struct {
	Level            string `mapstructure:"level"`
	Format           string `mapstructure:"format"`
	DisableTimestamp bool   `mapstructure:"disable_timestamp"`
}

type Cfg struct {
	Input      string   `mapstructure:"input"`
	Countries  []string `mapstructure:"countries"`
	Indicators []string `mapstructure:"indicators"`
	Mode       string   `mapstructure:"mode"`
	SkipRows   *int     `mapstructure:"skip_rows"`
	Sheet      string   `mapstructure:"sheet"`
	Delimiter  string   `mapstructure:"delimiter"`
	MomentsOf  string   `mapstructure:"moments_of"`
	OutDir     string   `mapstructure:"out_dir"`
	NoCharts   bool     `mapstructure:"no_charts"`
	NoStats    bool     `mapstructure:"no_stats"`

	JSON           string `mapstructure:"json"`
	TransposedJSON string `mapstructure:"transposed_json"`
	XLSX           string `mapstructure:"xlsx"`
	Parquet        string `mapstructure:"parquet"`
	Pretty         bool   `mapstructure:"pretty"`

	Charts       []models.ChartRequest `mapstructure:"charts"`
	LoggerConfig LoggerConfig          `mapstructure:"logger"`
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"input":           "input",
	"countries":       "countries",
	"indicators":      "indicators",
	"mode":            "mode",
	"sheet":           "sheet",
	"delimiter":       "delimiter",
	"moments-of":      "moments_of",
	"out-dir":         "out_dir",
	"no-charts":       "no_charts",
	"no-stats":        "no_stats",
	"json":            "json",
	"transposed-json": "transposed_json",
	"xlsx":            "xlsx",
	"parquet":         "parquet",
	"pretty":          "pretty",
}

// GetConfigs reads the configuration. Precedence, highest first: changed
// flags, WDICHART_* environment variables, the config file, defaults.
// With an empty path a file named config is looked up in "." and
// "./configs"; a missing file is not an error. flags may be nil.
func GetConfigs(path string, flags *pflag.FlagSet, logger logrus.FieldLogger) (Cfg, error) {
	var configs Cfg
	if logger == nil {
		logger = logrus.New()
	}
	v := viper.New()
	setDefault(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("skip_rows"); err != nil {
		return configs, err
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return configs, err
				}
			}
		}
		// skip_rows has no default: an unchanged flag must leave it unset.
		if f := flags.Lookup("skip-rows"); f != nil && f.Changed {
			v.Set("skip_rows", f.Value.String())
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs/")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return configs, err
		}
		logger.Debug("config file not found, using defaults")
	} else {
		logger.WithField("file", v.ConfigFileUsed()).Debug("config file found")
	}

	if err := v.Unmarshal(&configs); err != nil {
		return configs, err
	}
	return configs, nil
}

func setDefault(v *viper.Viper) {
	defaults := wdichart.DefaultOptions()
	v.SetDefault("input", wdichart.DefaultInput)
	v.SetDefault("countries", defaults.Countries)
	v.SetDefault("indicators", defaults.Indicators)
	v.SetDefault("mode", string(defaults.Mode))
	v.SetDefault("sheet", "")
	v.SetDefault("delimiter", ",")
	v.SetDefault("moments_of", defaults.MomentsOf)
	v.SetDefault("out_dir", defaults.OutDir)
	v.SetDefault("no_charts", false)
	v.SetDefault("no_stats", false)
	v.SetDefault("json", "")
	v.SetDefault("transposed_json", "")
	v.SetDefault("xlsx", "")
	v.SetDefault("parquet", "")
	v.SetDefault("pretty", false)
	v.SetDefault("logger.level", "INFO")
	v.SetDefault("logger.format", "TEXT")
	v.SetDefault("logger.disable_timestamp", false)
}

// Options converts the configuration into run options.
func (c Cfg) Options(logger logrus.FieldLogger) (wdichart.Options, error) {
	mode, err := wdichart.ParseMode(c.Mode)
	if err != nil {
		return wdichart.Options{}, err
	}

	delimiter, err := parseDelimiter(c.Delimiter)
	if err != nil {
		return wdichart.Options{}, err
	}

	includeCharts := !c.NoCharts
	includeStats := !c.NoStats
	return wdichart.Options{
		Countries:     c.Countries,
		Indicators:    c.Indicators,
		Mode:          mode,
		SkipRows:      c.SkipRows,
		Sheet:         c.Sheet,
		Delimiter:     delimiter,
		MomentsOf:     c.MomentsOf,
		Charts:        c.Charts,
		OutDir:        c.OutDir,
		IncludeCharts: &includeCharts,
		IncludeStats:  &includeStats,
		Logger:        logger,
	}, nil
}

// parseDelimiter accepts a single character or "tab". Empty means ','.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return ',', nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid delimiter: %q (must be a single character or tab)", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
