package sources

import (
	"sort"

	"github.com/rabobank/bindingsview/model"
)

// BindingsFromServices flattens the {serviceLabel: [instance, ...]} shape into
// one record per instance. An absent source yields an empty list, an error
// marker is passed through as the list's single element so the failure stays
// visible in the output. Labels are iterated in sorted order (Go maps have no
// source order), instances keep their array order.
func BindingsFromServices(services model.JSON) []model.JSON {
	flat := make([]model.JSON, 0)
	if len(services) == 0 {
		return flat
	}
	if model.IsError(services) {
		return append(flat, services)
	}

	labels := make([]string, 0, len(services))
	for label := range services {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		instances, isList := services[label].([]interface{})
		if !isList {
			continue
		}
		for _, instance := range instances {
			obj, isMap := instance.(map[string]interface{})
			if !isMap {
				continue
			}
			flat = append(flat, model.JSON{
				"service_label": label,
				"plan":          fieldOrPlaceholder(obj, "plan"),
				"instance_name": fieldOrPlaceholder(obj, "name"),
				"instance_guid": fieldOrPlaceholder(obj, "instance_guid"),
				"binding_guid":  fieldOrPlaceholder(obj, "binding_guid"),
				"binding_name":  fieldOrPlaceholder(obj, "binding_name"),
				"credentials":   credentialsOf(obj),
			})
		}
	}
	return flat
}

func fieldOrPlaceholder(obj map[string]interface{}, key string) interface{} {
	if value, found := obj[key]; found && value != nil {
		return value
	}
	return model.Placeholder
}

// credentialsOf always returns a mapping, so the redactor and the page can
// treat every record uniformly.
func credentialsOf(obj map[string]interface{}) model.JSON {
	if creds, isMap := obj["credentials"].(map[string]interface{}); isMap {
		return creds
	}
	return model.JSON{}
}
