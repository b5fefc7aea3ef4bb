package gotemplate

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// ariaFilters are registered by every engine.
func ariaFilters() map[string]pongo2.FilterFunction {
	return map[string]pongo2.FilterFunction{
		"trim":     filterTrim,
		"ariabool": filterAriaBool,
		"idrefs":   filterIDRefs,
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterAriaBool renders a truthy value as the ARIA token "true" or "false".
func filterAriaBool(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsTrue() {
		return pongo2.AsValue("true"), nil
	}
	return pongo2.AsValue("false"), nil
}

// filterIDRefs joins a list of ids into an IDREFS attribute value, dropping
// blanks.
func filterIDRefs(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() {
		return pongo2.AsValue(""), nil
	}
	if in.IsString() {
		return pongo2.AsValue(strings.Join(strings.Fields(in.String()), " ")), nil
	}
	var ids []string
	in.Iterate(func(idx, count int, key, value *pongo2.Value) bool {
		id := strings.TrimSpace(fmt.Sprint(key.Interface()))
		if id != "" && id != "<nil>" {
			ids = append(ids, id)
		}
		return true
	}, func() {})
	return pongo2.AsValue(strings.Join(ids, " ")), nil
}
