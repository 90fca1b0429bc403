package model

import (
	"time"

	"github.com/uncal-lab/flowcanvas/pkg/domain/types"
)

// IconResolver maps a component category key to its default icon. The
// actual lookup table lives outside the core; FallbackIcon is used when no
// resolver is supplied.
type IconResolver func(category string) string

// FallbackIcon is the icon used when neither the payload nor the resolver
// provides one.
const FallbackIcon = "\U0001F4E6" // package emoji

// UnnamedLabel is the label fallback for components that carry neither an
// explicit label nor a name value.
const UnnamedLabel = "Unnamed"

func resolveIcon(resolver IconResolver, category string) string {
	if resolver != nil {
		if icon := resolver(category); icon != "" {
			return icon
		}
	}
	return FallbackIcon
}

// NormalizeComponent merges the two redundant persisted sub-trees of one
// raw component into the canonical in-memory form. Precedence for data is
// config.data, then form.data, then empty; schema parts (tabs, title,
// buttons) prefer config over form independently. Data keys unknown to the
// merged schema are dropped, except the legacy critical keys which always
// survive.
func NormalizeComponent(raw *WireComponent, icons IconResolver) *PlacedComponent {
	var cfg, form ConfigSection
	if raw.Config != nil {
		cfg = *raw.Config
	}
	if raw.Form != nil {
		form = *raw.Form
	}

	data := cfg.Data
	if data == nil {
		data = form.Data
	}

	schema := &FormSchema{
		Title:   firstNonEmpty(cfg.Title, form.Title),
		Tabs:    cloneTabs(firstTabs(cfg.Tabs, form.Tabs)),
		Buttons: firstButtons(cfg.Buttons, form.Buttons),
	}

	canonical := make(FieldMap, len(data))
	for k, v := range data {
		if schema.HasField(k) || IsLegacyCriticalKey(k) {
			canonical[k] = v
		}
	}

	label := raw.Label
	if label == "" {
		if name, ok := canonical["name"].(string); ok && name != "" {
			label = name
		} else {
			label = UnnamedLabel
		}
	}

	icon := raw.Icon
	if icon == "" {
		icon = resolveIcon(icons, raw.Type)
	}

	var style *Style
	if raw.Style != nil {
		s := *raw.Style
		style = &s
	}

	return &PlacedComponent{
		ID:     types.ComponentID(raw.ID),
		Type:   types.Category(raw.Type),
		Label:  label,
		Icon:   icon,
		Notes:  raw.Notes,
		Style:  style,
		Data:   canonical.Clone(),
		Schema: schema,
	}
}

// NormalizePayload converts a decoded canvas payload into the canonical
// component list. The components array is authoritative; the flow array is
// the fallback for documents written by the older format.
func NormalizePayload(p *WirePayload, icons IconResolver) []*PlacedComponent {
	if p == nil {
		return []*PlacedComponent{}
	}

	if len(p.Components) > 0 {
		out := make([]*PlacedComponent, 0, len(p.Components))
		for i := range p.Components {
			out = append(out, NormalizeComponent(&p.Components[i], icons))
		}
		return out
	}

	out := make([]*PlacedComponent, 0, len(p.Flow))
	for i := range p.Flow {
		entry := p.Flow[i]
		raw := WireComponent{
			ID:     entry.ID,
			Type:   entry.Type,
			Label:  entry.Label,
			Notes:  entry.Notes,
			Style:  entry.Style,
			Config: entry.Config,
		}
		out = append(out, NormalizeComponent(&raw, icons))
	}
	return out
}

// ProjectComponent fans the canonical data out into the persisted shape.
// Both sub-trees receive identical copies of the data and schema, which
// guarantees any consumer reading either config.data or form.data observes
// the same values.
func ProjectComponent(pc *PlacedComponent) WireComponent {
	section := func() *ConfigSection {
		s := &ConfigSection{Data: pc.Data.Clone()}
		if s.Data == nil {
			s.Data = FieldMap{}
		}
		if pc.Schema != nil {
			s.Tabs = cloneTabs(pc.Schema.Tabs)
			s.Title = pc.Schema.Title
			s.Buttons = append([]Button(nil), pc.Schema.Buttons...)
		}
		return s
	}

	var style *Style
	if pc.Style != nil {
		s := *pc.Style
		style = &s
	}

	return WireComponent{
		ID:     WireID(pc.ID),
		Icon:   pc.Icon,
		Type:   pc.Type.String(),
		Label:  pc.Label,
		Notes:  pc.Notes,
		Config: section(),
		Form:   section(),
		Style:  style,
	}
}

// ProjectFlowEntry produces the pared-down flow representation.
func ProjectFlowEntry(pc *PlacedComponent) FlowEntry {
	wc := ProjectComponent(pc)
	return FlowEntry{
		ID:     wc.ID,
		Type:   wc.Type,
		Label:  wc.Label,
		Notes:  wc.Notes,
		Style:  wc.Style,
		Config: wc.Config,
	}
}

// PayloadVersion is the current wire format version.
const PayloadVersion = 1

// BuildPayload assembles the full wire payload for a save.
func BuildPayload(components []*PlacedComponent, now time.Time) *WirePayload {
	p := &WirePayload{
		Version:      PayloadVersion,
		Components:   make([]WireComponent, 0, len(components)),
		Flow:         make([]FlowEntry, 0, len(components)),
		LastModified: now.UTC().Format(time.RFC3339),
	}
	for _, pc := range components {
		p.Components = append(p.Components, ProjectComponent(pc))
		p.Flow = append(p.Flow, ProjectFlowEntry(pc))
	}
	return p
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstTabs(a, b []Tab) []Tab {
	if len(a) > 0 {
		return a
	}
	return b
}

func firstButtons(a, b []Button) []Button {
	if len(a) > 0 {
		return a
	}
	return b
}
