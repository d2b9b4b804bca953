package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tankduel/engine"
)

// NoSelection is returned by Selected when no roster row is selected.
const NoSelection = -1

// EntityRow is one roster entry as shown in the browser.
type EntityRow struct {
	Index   int
	Type    string
	Bounds  engine.Rect
	Members int // group size, 0 for plain entities
}

const (
	columnIndex = iota
	columnType
	columnBounds
	columnMembers
)

// RosterBrowser lists the scene roster in a sortable, filterable table.
type RosterBrowser struct {
	rows           []EntityRow
	sortColumn     int
	sortAscending  bool
	selected       int
	filterText     string
	maxRowsPerPage int
	currentPage    int
}

func NewRosterBrowser(maxRowsPerPage int) *RosterBrowser {
	if maxRowsPerPage <= 0 {
		maxRowsPerPage = 100
	}
	return &RosterBrowser{
		sortColumn:     columnIndex,
		sortAscending:  true,
		selected:       NoSelection,
		maxRowsPerPage: maxRowsPerPage,
	}
}

// Refresh rebuilds the rows from the scene. Bounds change every frame, so
// nothing is cached between calls.
func (rb *RosterBrowser) Refresh(scene *engine.Scene) {
	children := scene.Children()
	rb.rows = rb.rows[:0]

	for i, child := range children {
		row := EntityRow{
			Index:  i,
			Type:   fmt.Sprintf("%T", child),
			Bounds: child.Bounds(),
		}
		if g, ok := child.(*engine.Group); ok {
			row.Members = g.Len()
		}
		rb.rows = append(rb.rows, row)
	}

	if rb.selected >= len(children) {
		rb.selected = NoSelection
	}

	rb.sortRows()
}

// SortBy changes the sort column and direction.
func (rb *RosterBrowser) SortBy(column int, ascending bool) {
	rb.sortColumn = column
	rb.sortAscending = ascending
	rb.sortRows()
}

// SetFilter restricts Rows to entries whose index or type contains text.
func (rb *RosterBrowser) SetFilter(text string) {
	rb.filterText = text
	rb.currentPage = 0
}

// Select marks a roster index as selected.
func (rb *RosterBrowser) Select(index int) {
	rb.selected = index
}

// Selected returns the selected roster index or NoSelection.
func (rb *RosterBrowser) Selected() int {
	return rb.selected
}

func (rb *RosterBrowser) Render(scene *engine.Scene) {
	if !imgui.BeginV("Scene Roster", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	rb.Refresh(scene)

	imgui.InputTextWithHint("##search", "Search...", &rb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		rb.SetFilter("")
	}

	rows := rb.Rows()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("RosterTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Type")
		imgui.TableSetupColumn("Bounds")
		imgui.TableSetupColumn("Members")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			rb.SortBy(int(spec.ColumnIndex()), spec.SortDirection() == imgui.SortDirectionAscending)
			sortSpecs.SetSpecsDirty(false)
			rows = rb.Rows()
		}

		start := rb.currentPage * rb.maxRowsPerPage
		end := min(start+rb.maxRowsPerPage, len(rows))

		for i := start; i < end; i++ {
			row := rows[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", row.Index), rb.selected == row.Index, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				rb.selected = row.Index
			}

			imgui.TableNextColumn()
			imgui.Text(row.Type)

			imgui.TableNextColumn()
			imgui.Text(formatRect(row.Bounds))

			imgui.TableNextColumn()
			if row.Members > 0 {
				imgui.Text(fmt.Sprintf("%d", row.Members))
			}
		}

		imgui.EndTable()
	}

	if len(rows) > rb.maxRowsPerPage {
		totalPages := (len(rows) + rb.maxRowsPerPage - 1) / rb.maxRowsPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", rb.currentPage+1, totalPages, len(rows)))
		imgui.SameLine()
		if imgui.Button("Prev") && rb.currentPage > 0 {
			rb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && rb.currentPage < totalPages-1 {
			rb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(rows)))
	}

	imgui.End()
}

func (rb *RosterBrowser) sortRows() {
	sort.SliceStable(rb.rows, func(i, j int) bool {
		a, b := rb.rows[i], rb.rows[j]
		var less bool

		switch rb.sortColumn {
		case columnType:
			less = a.Type < b.Type
		case columnBounds:
			less = a.Bounds.X < b.Bounds.X || (a.Bounds.X == b.Bounds.X && a.Bounds.Y < b.Bounds.Y)
		case columnMembers:
			less = a.Members < b.Members
		default:
			less = a.Index < b.Index
		}

		if !rb.sortAscending {
			return !less
		}
		return less
	})
}

// Rows returns the current rows after filtering.
func (rb *RosterBrowser) Rows() []EntityRow {
	if rb.filterText == "" {
		return rb.rows
	}

	filtered := make([]EntityRow, 0, len(rb.rows))
	filterLower := strings.ToLower(rb.filterText)

	for _, row := range rb.rows {
		idStr := fmt.Sprintf("%d", row.Index)
		if !strings.Contains(idStr, filterLower) && !strings.Contains(strings.ToLower(row.Type), filterLower) {
			continue
		}
		filtered = append(filtered, row)
	}

	return filtered
}

func formatRect(r engine.Rect) string {
	return fmt.Sprintf("(%.0f, %.0f) %.0fx%.0f", r.X, r.Y, r.W, r.H)
}
