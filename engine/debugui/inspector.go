package debugui

import (
	"fmt"
	"image/color"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tankduel/engine"
)

// maxInspectDepth bounds how far nested structs are expanded.
const maxInspectDepth = 4

// FieldValue is one formatted field of an inspected entity. Path joins nested
// field names with dots.
type FieldValue struct {
	Path  string
	Depth int
	Value string
}

// Inspect flattens the exported fields of v, following pointers. Fields of
// embedded structs are listed as if declared on v. Unexported state is not
// shown.
func Inspect(v any) []FieldValue {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if !val.IsValid() {
		return nil
	}
	if val.Kind() != reflect.Struct || isLeaf(val) {
		return []FieldValue{{Path: val.Type().String(), Value: formatValue(val)}}
	}

	var out []FieldValue
	inspectStruct(&out, val, "", 0)
	return out
}

// inspectedField is one row of a struct's flattened layout. Fields promoted
// from embedded structs such as engine.Body appear under their own names.
type inspectedField struct {
	name   string
	index  []int
	deref  bool
	expand bool
}

// fieldLayouts caches the flattened layout per struct type.
var fieldLayouts sync.Map

func layoutOf(t reflect.Type) []inspectedField {
	if cached, ok := fieldLayouts.Load(t); ok {
		return cached.([]inspectedField)
	}

	var layout []inspectedField
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}
		ft := f.Type
		deref := ft.Kind() == reflect.Pointer
		if deref {
			ft = ft.Elem()
		}
		if f.Anonymous && ft.Kind() == reflect.Struct {
			// Its promoted fields follow in VisibleFields.
			continue
		}
		layout = append(layout, inspectedField{
			name:   f.Name,
			index:  f.Index,
			deref:  deref,
			expand: ft.Kind() == reflect.Struct,
		})
	}

	actual, _ := fieldLayouts.LoadOrStore(t, layout)
	return actual.([]inspectedField)
}

func inspectStruct(out *[]FieldValue, val reflect.Value, prefix string, depth int) {
	for _, field := range layoutOf(val.Type()) {
		path := field.name
		if prefix != "" {
			path = prefix + "." + field.name
		}

		// Fails when the field is promoted through a nil embedded pointer.
		fieldVal, err := val.FieldByIndexErr(field.index)
		if err != nil || (field.deref && fieldVal.IsNil()) {
			*out = append(*out, FieldValue{Path: path, Depth: depth, Value: "nil"})
			continue
		}
		if field.deref {
			fieldVal = fieldVal.Elem()
		}

		if field.expand && depth < maxInspectDepth && !isLeaf(fieldVal) {
			inspectStruct(out, fieldVal, path, depth+1)
			continue
		}

		*out = append(*out, FieldValue{Path: path, Depth: depth, Value: formatValue(fieldVal)})
	}
}

// isLeaf reports whether a struct value has its own text form.
func isLeaf(v reflect.Value) bool {
	if !v.CanInterface() {
		return false
	}
	switch v.Interface().(type) {
	case color.Color, fmt.Stringer:
		return true
	}
	return false
}

func formatValue(v reflect.Value) string {
	if !v.IsValid() {
		return "<invalid>"
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Func, reflect.Chan, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return "nil"
		}
	}

	if v.CanInterface() {
		switch x := v.Interface().(type) {
		case color.Color:
			return formatColor(x)
		case fmt.Stringer:
			return x.String()
		}
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', 2, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.String:
		return strconv.Quote(v.String())
	case reflect.Slice:
		return fmt.Sprintf("[%d items]", v.Len())
	case reflect.Map:
		return fmt.Sprintf("map[%d items]", v.Len())
	case reflect.Interface, reflect.Pointer:
		return v.Elem().Type().String()
	case reflect.Func:
		return "func"
	}

	if v.CanInterface() {
		return fmt.Sprintf("%v", v.Interface())
	}
	return v.Type().String()
}

func formatColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0xffff {
		return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r>>8, g>>8, b>>8, a>>8)
}

// Inspector shows the fields of the entity selected in the roster.
type Inspector struct {
	selected int
	fields   []FieldValue
}

func NewInspector() *Inspector {
	return &Inspector{selected: NoSelection}
}

func (in *Inspector) Render(scene *engine.Scene, selected int) {
	if !imgui.BeginV("Entity Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	in.selected = selected
	children := scene.Children()

	if in.selected == NoSelection {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}
	if in.selected < 0 || in.selected >= len(children) {
		imgui.Text(fmt.Sprintf("Entity %d not in roster", in.selected))
		imgui.End()
		return
	}

	entity := children[in.selected]
	imgui.Text(fmt.Sprintf("Entity: %d", in.selected))
	imgui.Text(fmt.Sprintf("Type: %T", entity))
	imgui.Text(fmt.Sprintf("Bounds: %s", formatRect(entity.Bounds())))
	imgui.Separator()

	in.fields = Inspect(entity)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("InspectorTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Field")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()

		for _, f := range in.fields {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(strings.Repeat("  ", f.Depth) + f.Path)
			imgui.TableNextColumn()
			imgui.Text(f.Value)
		}

		imgui.EndTable()
	}

	imgui.End()
}
