package catalog

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-a11ycatalog/pkg/a11y"
	"github.com/goliatone/go-a11ycatalog/pkg/model"
)

func validateScreen(screen model.Screen, source string) error {
	if strings.TrimSpace(screen.Title) == "" {
		return fmt.Errorf("catalog: screen %q (file %s) has no title", screen.ID, source)
	}
	ids := make(map[string]struct{})
	claim := func(id, where string) error {
		id = strings.TrimSpace(id)
		if id == "" {
			return nil
		}
		if _, exists := ids[id]; exists {
			return fmt.Errorf("catalog: screen %q (file %s) declares id %q twice (%s)", screen.ID, source, id, where)
		}
		ids[id] = struct{}{}
		return nil
	}

	for sIdx, section := range screen.Sections {
		if !section.Kind.Valid() {
			return fmt.Errorf("catalog: screen %q (file %s) section %d has invalid kind %q", screen.ID, source, sIdx, section.Kind)
		}
		for eIdx, example := range section.Examples {
			where := fmt.Sprintf("section %d example %d", sIdx, eIdx)
			if strings.TrimSpace(example.Title) == "" {
				return fmt.Errorf("catalog: screen %q (file %s) %s has no title", screen.ID, source, where)
			}
			if err := claim(example.ID, where); err != nil {
				return err
			}
			for iIdx, item := range example.Items {
				itemWhere := fmt.Sprintf("%s item %d", where, iIdx)
				if err := validateItem(item, claim, itemWhere); err != nil {
					return fmt.Errorf("catalog: screen %q (file %s) %s: %w", screen.ID, source, itemWhere, err)
				}
			}
			if example.Details != nil {
				if strings.TrimSpace(example.Details.Text) == "" {
					return fmt.Errorf("catalog: screen %q (file %s) %s details have no text", screen.ID, source, where)
				}
				if err := claim(example.Details.ID, where+" details"); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func validateItem(item model.Item, claim func(id, where string) error, where string) error {
	kinds := item.Kinds()
	switch len(kinds) {
	case 0:
		return fmt.Errorf("item is empty")
	case 1:
	default:
		return fmt.Errorf("item sets several kinds %v", kinds)
	}

	switch kinds[0] {
	case model.ItemControl:
		return validateControl(*item.Control, claim, where)
	case model.ItemGroup:
		if err := claim(item.Group.ID, where); err != nil {
			return err
		}
		if len(item.Group.Members) == 0 {
			return fmt.Errorf("group %q has no members", item.Group.Label)
		}
		for _, member := range item.Group.Members {
			if err := validateControl(member, claim, where); err != nil {
				return err
			}
		}
	case model.ItemAntiPattern:
		ap := item.AntiPattern
		if !ap.Kind.Valid() {
			return fmt.Errorf("unknown anti-pattern %q", ap.Kind)
		}
		if err := claim(ap.ID, where); err != nil {
			return err
		}
		switch ap.Kind {
		case model.AntiPatternLooseGroup:
			if len(ap.Members) == 0 {
				return fmt.Errorf("loose group %q has no members", ap.Label)
			}
			for _, member := range ap.Members {
				if err := validateControl(member, claim, where); err != nil {
					return err
				}
			}
		case model.AntiPatternHiddenPanel:
			if strings.TrimSpace(ap.Title) == "" {
				return fmt.Errorf("hidden panel has no title")
			}
		}
	}
	return nil
}

func validateControl(control model.Control, claim func(id, where string) error, where string) error {
	if control.Kind != "" && !a11y.Kind(control.Kind).Valid() {
		return fmt.Errorf("control %q has unknown kind %q", control.Label, control.Kind)
	}
	return claim(control.ID, where)
}
