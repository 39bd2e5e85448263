package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	SeedsDir          string `usage:"directory with <collection>.jsonl seed files, embedded seeds when empty"`
	ViewsFile         string `usage:"TOML file with the list views, embedded views when empty"`
	Statics           string `usage:"statics directory, embedded statics when empty"`
	Actor             string `usage:"user recorded in the audit log for bulk actions"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:          "127.0.0.1:8080",
		Actor:             "admin@landregistry.gov.lk",
		ShowBanner:        true,
		ShowConfig:        false,
		EnableCompression: true,
	}
}
