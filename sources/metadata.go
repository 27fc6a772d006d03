package sources

import (
	"fmt"
	"os"

	"github.com/rabobank/bindingsview/model"
)

// AppMeta derives the application identity block from VCAP_APPLICATION, with
// per-field environment fallbacks. There is no error state: a malformed or
// absent VCAP_APPLICATION just means every fallback chain runs to its end.
func (c Config) AppMeta() model.AppMetadata {
	vapp := c.ApplicationFromEnv()
	if vapp == nil || model.IsError(vapp) {
		vapp = model.JSON{}
	}
	limits, _ := vapp["limits"].(map[string]interface{})

	return model.AppMetadata{
		CfApi:         scalarOr(vapp, "cf_api", model.Placeholder),
		AppName:       firstNonEmpty(scalar(vapp, "application_name"), scalar(vapp, "name"), os.Getenv(c.AppNameVar), model.Placeholder),
		AppUris:       uriList(vapp["application_uris"]),
		InstanceIndex: scalarOr(vapp, "instance_index", firstNonEmpty(os.Getenv(c.InstanceIndexVar), model.Placeholder)),
		SpaceName:     scalarOr(vapp, "space_name", model.Placeholder),
		OrgName:       scalarOr(vapp, "organization_name", model.Placeholder),
		MemoryLimit:   scalarOr(limits, "mem", firstNonEmpty(os.Getenv(c.MemoryLimitVar), model.Placeholder)),
		DiskLimit:     scalarOr(limits, "disk", firstNonEmpty(os.Getenv(c.DiskLimitVar), model.Placeholder)),
	}
}

// scalar renders a JSON scalar as display text, "" when absent. VCAP carries
// the instance index and limits as numbers, the record is display-only.
func scalar(m map[string]interface{}, key string) string {
	if value, found := m[key]; found && value != nil {
		return fmt.Sprintf("%v", value)
	}
	return ""
}

func scalarOr(m map[string]interface{}, key string, fallback string) string {
	if text := scalar(m, key); text != "" {
		return text
	}
	return fallback
}

func firstNonEmpty(candidates ...string) string {
	for _, text := range candidates {
		if text != "" {
			return text
		}
	}
	return ""
}

func uriList(value interface{}) []string {
	uris := make([]string, 0)
	if items, isList := value.([]interface{}); isList {
		for _, item := range items {
			if text, isString := item.(string); isString {
				uris = append(uris, text)
			}
		}
	}
	return uris
}
