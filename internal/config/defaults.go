package config

const (
	defaultConfigPath    = "~/.config/imdblist/config.toml"
	defaultInputDir      = "~/imdb"
	defaultOutputPath    = "~/imdb/movies.tsv"
	defaultSourceCharset = "ISO-8859-1"
	defaultExportFormat  = "tsv"
	defaultExportCharset = "utf-8"
	defaultMissingNumber = "-1"
	defaultMinGenreCount = 0
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Categories lists the dump categories in their default pass order.
var Categories = []string{
	"titles",
	"genres",
	"ratings",
	"business",
	"directors",
	"running_times",
	"countries",
	"languages",
	"mpaa",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InputDir:   defaultInputDir,
			OutputPath: defaultOutputPath,
		},
		Sources: Sources{
			Encoding:     defaultSourceCharset,
			Titles:       "movies.list",
			Genres:       "genres.list",
			Ratings:      "ratings.list",
			Business:     "business.list",
			Directors:    "directors.list",
			RunningTimes: "running-times.list",
			Countries:    "countries.list",
			Languages:    "language.list",
			MPAA:         "mpaa-ratings-reasons.list",
		},
		Ingest: Ingest{
			IncludeMovies: true,
			PrintProgress: true,
			Order:         append([]string(nil), Categories...),
		},
		Export: Export{
			Format:        defaultExportFormat,
			Encoding:      defaultExportCharset,
			MinGenreCount: defaultMinGenreCount,
			MissingNumber: defaultMissingNumber,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
