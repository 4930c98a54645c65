package services

import (
	"github.com/reglet-dev/ariasheet/internal/domain/entities"
	"github.com/reglet-dev/ariasheet/internal/domain/values"
)

// SpecTransformer flattens the upstream dataset into the cheat sheet tables.
// It is a pure function of the dataset and safe to share between goroutines.
type SpecTransformer struct {
	dataset  *entities.Dataset
	elements []entities.Element
}

// NewSpecTransformer creates a transformer. Elements are deduplicated by name
// once, the first occurrence wins.
func NewSpecTransformer(dataset *entities.Dataset) *SpecTransformer {
	return &SpecTransformer{
		dataset:  dataset,
		elements: Unique(dataset.Specs),
	}
}

// PropList returns the deduplicated aria-* properties of a version.
func (t *SpecTransformer) PropList(version values.ARIAVersion) []entities.AriaProperty {
	return Unique(t.dataset.ARIA(version).Props)
}

// RoleList returns the deduplicated roles of a version, graphics roles last.
func (t *SpecTransformer) RoleList(version values.ARIAVersion) []entities.Role {
	def := t.dataset.ARIA(version)
	roles := make([]entities.Role, 0, len(def.Roles)+len(def.GraphicsRoles))
	roles = append(roles, def.Roles...)
	roles = append(roles, def.GraphicsRoles...)
	return Unique(roles)
}

// ElementTable computes the element x property and element x role matrix.
func (t *SpecTransformer) ElementTable(version values.ARIAVersion) entities.ElementTable {
	props := t.PropList(version)
	roles := t.RoleList(version)
	classifier := NewPropertyClassifier(roles)

	table := entities.ElementTable{
		Version: version,
		Props:   propHeaders(props),
		Roles:   make([]entities.RoleHeader, 0, len(roles)),
		Rows:    make([]entities.ElementRow, 0, len(t.elements)),
	}
	for _, role := range roles {
		table.Roles = append(table.Roles, entities.RoleHeader{Name: role.Name, Abstract: role.IsAbstract})
	}

	for i := range t.elements {
		el := &t.elements[i]
		name, err := values.NewElementName(el.Name)
		if err != nil {
			continue
		}
		deprecated := el.IsDeprecated()
		attrs := el.HTMLAttributes()
		res := el.ARIA.Resolve(version)

		table.Rows = append(table.Rows, entities.ElementRow{
			Name:         name,
			Deprecated:   deprecated,
			ImplicitRole: res.ImplicitRole,
			Props: classifyAll(classifier, props, Variant{
				ImplicitRole: res.ImplicitRole,
				Properties:   res.Properties,
				Attributes:   attrs,
			}),
			Roles: permitAll(roles, res.PermittedRoles),
		})

		for _, cond := range res.Conditions {
			properties := res.Properties
			if cond.Properties != nil {
				properties = *cond.Properties
			}
			table.Rows = append(table.Rows, entities.ElementRow{
				Name:         name,
				Condition:    cond.Selector,
				Selectors:    SplitSelector(cond.Selector),
				Deprecated:   deprecated,
				ImplicitRole: cond.ImplicitRole,
				Props: classifyAll(classifier, props, Variant{
					ImplicitRole: cond.ImplicitRole,
					Properties:   properties,
					Attributes:   attributesFor(attrs, cond.Selector),
				}),
				Roles: permitAll(roles, cond.PermittedRoles),
			})
		}
	}
	return table
}

// RoleTable computes the role x property ownership matrix.
func (t *SpecTransformer) RoleTable(version values.ARIAVersion) entities.RoleTable {
	props := t.PropList(version)
	roles := t.RoleList(version)

	table := entities.RoleTable{
		Version: version,
		Props:   propHeaders(props),
		Rows:    make([]entities.RoleRow, 0, len(roles)),
	}
	for i := range roles {
		row := entities.RoleRow{
			Name:     roles[i].Name,
			Abstract: roles[i].IsAbstract,
			Props:    make([]entities.Ownership, len(props)),
		}
		for j, prop := range props {
			row.Props[j] = ownership(&roles[i], prop.Name)
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// Sheet computes both tables for every supported version, newest first.
func (t *SpecTransformer) Sheet() entities.Sheet {
	sheet := entities.Sheet{DatasetVersion: t.dataset.Version}
	if sheet.DatasetVersion == "" {
		sheet.DatasetVersion = entities.UnknownDatasetVersion
	}
	for _, version := range values.SupportedARIAVersions() {
		sheet.Elements = append(sheet.Elements, t.ElementTable(version))
		sheet.Roles = append(sheet.Roles, t.RoleTable(version))
	}
	return sheet
}

func propHeaders(props []entities.AriaProperty) []entities.PropHeader {
	headers := make([]entities.PropHeader, 0, len(props))
	for _, prop := range props {
		headers = append(headers, entities.PropHeader{Name: prop.Name, Global: prop.IsGlobal})
	}
	return headers
}

func classifyAll(c *PropertyClassifier, props []entities.AriaProperty, v Variant) []entities.PropCell {
	cells := make([]entities.PropCell, len(props))
	for i, prop := range props {
		cells[i] = c.Classify(prop, v)
	}
	return cells
}

func permitAll(roles []entities.Role, rule entities.PermittedRoles) []bool {
	flags := make([]bool, len(roles))
	for i := range roles {
		flags[i] = RolePermitted(rule, roles[i].Name)
	}
	return flags
}

// attributesFor keeps the attributes available under a condition selector.
func attributesFor(attrs []entities.HTMLAttribute, selector string) []entities.HTMLAttribute {
	out := make([]entities.HTMLAttribute, 0, len(attrs))
	for _, attr := range attrs {
		if attr.AppliesTo(selector) {
			out = append(out, attr)
		}
	}
	return out
}

func ownership(role *entities.Role, prop string) entities.Ownership {
	owned, ok := role.Owned(prop)
	switch {
	case !ok:
		return entities.NotOwned
	case owned.Deprecated:
		return entities.OwnedDeprecated
	case owned.Required:
		return entities.OwnedRequired
	default:
		return entities.Owned
	}
}
