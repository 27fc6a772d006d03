package model

// Placeholder is rendered for binding fields the source did not provide.
const Placeholder = "—"

// DirectoryBinding is one /etc/cf-service-bindings/<name> subdirectory, one
// Data entry per file in it.
type DirectoryBinding struct {
	BindingName string `json:"binding_name"`
	BindingGuid string `json:"binding_guid,omitempty"`
	Data        JSON   `json:"data"`
}

// BindingsDocument is the body of GET /bindings.json.
type BindingsDocument struct {
	Env  []JSON             `json:"env"`
	File []JSON             `json:"file"`
	K8s  []DirectoryBinding `json:"k8s"`
}
