// Package sources reads the platform-injected configuration: VCAP environment
// variables, the optional services file, and the mounted binding directory.
// Readers never fail hard, a broken source becomes an in-band error marker.
package sources

// Config enumerates where the readers look. Tests point the variable names and
// the binding root at fakes instead of mutating the real process environment.
type Config struct {
	ServicesVar      string
	ApplicationVar   string
	ServicesFileVar  string
	BindingRoot      string
	AppNameVar       string
	InstanceIndexVar string
	MemoryLimitVar   string
	DiskLimitVar     string
}

func DefaultConfig() Config {
	return Config{
		ServicesVar:      "VCAP_SERVICES",
		ApplicationVar:   "VCAP_APPLICATION",
		ServicesFileVar:  "VCAP_SERVICES_FILE_PATH",
		BindingRoot:      "/etc/cf-service-bindings",
		AppNameVar:       "APP_NAME",
		InstanceIndexVar: "CF_INSTANCE_INDEX",
		MemoryLimitVar:   "MEMORY_LIMIT",
		DiskLimitVar:     "DISK_LIMIT",
	}
}
