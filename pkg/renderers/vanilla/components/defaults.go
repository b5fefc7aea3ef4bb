package components

import "html"

// RuntimeScript is the asset name of the progressive enhancement script.
const RuntimeScript = "a11ycatalog.js"

var runtime = []Script{{Src: RuntimeScript, Defer: true}}

// NewDefaultRegistry returns a registry with every built-in component.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameText, Descriptor{Renderer: textRenderer})
	registry.MustRegister(NameHeading, Descriptor{Renderer: textRenderer})
	registry.MustRegister(NameCheckbox, Descriptor{Renderer: controlRenderer, Scripts: runtime})
	registry.MustRegister(NameSwitch, Descriptor{Renderer: controlRenderer, Scripts: runtime})
	registry.MustRegister(NameToggleButton, Descriptor{Renderer: controlRenderer, Scripts: runtime})
	registry.MustRegister(NameGroup, Descriptor{Renderer: groupRenderer, Scripts: runtime})
	registry.MustRegister(NamePanel, Descriptor{
		Renderer: templatePanelRenderer(PanelPartial, PanelTemplate),
		Scripts:  runtime,
	})
	registry.MustRegister(NameImageCheckbox, Descriptor{Renderer: imageCheckboxRenderer, Scripts: runtime})
	registry.MustRegister(NameUnlabeledSwitch, Descriptor{Renderer: unlabeledSwitchRenderer, Scripts: runtime})
	registry.MustRegister(NameLooseGroup, Descriptor{Renderer: looseGroupRenderer, Scripts: runtime})
	registry.MustRegister(NameHiddenPanel, Descriptor{
		Renderer: templatePanelRenderer(PanelPartial, PanelTemplate),
		Scripts:  runtime,
	})

	return registry
}

func escape(s string) string {
	return html.EscapeString(s)
}
