package model

// AppMetadata is the application identity block on the diagnostic page. Every
// field is resolved independently with its own fallback chain, so the record
// is always complete (placeholders, never errors).
type AppMetadata struct {
	CfApi         string   `json:"cf_api"`
	AppName       string   `json:"app_name"`
	AppUris       []string `json:"app_uris"`
	InstanceIndex string   `json:"instance_index"`
	SpaceName     string   `json:"space_name"`
	OrgName       string   `json:"org_name"`
	MemoryLimit   string   `json:"memory_limit"`
	DiskLimit     string   `json:"disk_limit"`
}
