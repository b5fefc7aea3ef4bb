package catalog

import (
	"fmt"

	"github.com/goliatone/go-a11ycatalog/pkg/model"
)

// NumberScreens assigns Order by position to screens that leave it unset,
// after the ordered ones.
func NumberScreens() model.Decorator {
	return model.DecoratorFunc(func(catalog *model.Catalog) error {
		next := 0
		for _, screen := range catalog.Screens {
			if screen.Order > next {
				next = screen.Order
			}
		}
		for idx := range catalog.Screens {
			if catalog.Screens[idx].Order == 0 {
				next++
				catalog.Screens[idx].Order = next
			}
		}
		return nil
	})
}

// RequireSections rejects screens that lack either a good or a bad section.
func RequireSections() model.Decorator {
	return model.DecoratorFunc(func(catalog *model.Catalog) error {
		for _, screen := range catalog.Screens {
			var good, bad bool
			for _, section := range screen.Sections {
				switch section.Kind {
				case model.SectionGood:
					good = true
				case model.SectionBad:
					bad = true
				}
			}
			if !good || !bad {
				return fmt.Errorf("screen %q needs both good and bad sections", screen.ID)
			}
		}
		return nil
	})
}
