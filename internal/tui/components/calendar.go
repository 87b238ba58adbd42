package components

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/hy4ri/calpicker/internal/calendar"
	"github.com/hy4ri/calpicker/internal/config"
	"github.com/hy4ri/calpicker/internal/datemath"
	"github.com/hy4ri/calpicker/internal/locale"
	"github.com/hy4ri/calpicker/internal/tui/styles"
	"github.com/mattn/go-runewidth"
)

// HeaderContext is passed to a custom header renderer.
type HeaderContext struct {
	Title     string // e.g. "Jan, 2024"
	PrevMonth string // empty while a page change is settling
	NextMonth string
	Width     int // width of the grid in cells
	Paging    bool

	// Prev and Next are the picker's paging actions, for headers that bind
	// their own controls.
	Prev func() tea.Cmd
	Next func() tea.Cmd
}

// HeaderFunc renders the lines above the weekday labels. The header may span
// several lines; clicks on its left half page back and clicks on its right
// half page forward.
type HeaderFunc func(HeaderContext) string

// SelectedFunc renders the selected cell. label is already padded to the cell width.
type SelectedFunc func(label string) string

// Options configures a picker. The zero value is a Monday-first English
// picker with the default theme that pages without delay.
type Options struct {
	WeekStart   calendar.WeekStart
	Labels      calendar.LabelSet
	Translator  *locale.Translator
	Theme       *styles.Theme
	SettleDelay time.Duration
	Header      HeaderFunc
	Selected    SelectedFunc
	Clock       datemath.Clock
}

// OptionsFromConfig builds picker options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config, tr *locale.Translator) Options {
	theme := styles.ThemeFromConfig(cfg.Style)
	return Options{
		WeekStart:   cfg.WeekStart(),
		Labels:      cfg.LabelSet(),
		Translator:  tr,
		Theme:       &theme,
		SettleDelay: cfg.SettleDelay(),
	}
}

// PickerModel is a month-grid date picker.
type PickerModel struct {
	id      string
	ctrl    *calendar.Controller
	opts    Options
	theme   styles.Theme
	labels  calendar.DayOfWeek
	cursor  int
	focused bool

	width, height    int
	originX, originY int
}

// NewPicker creates a picker showing date's month with selected highlighted.
func NewPicker(date, selected time.Time, opts Options) *PickerModel {
	theme := styles.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	if opts.Clock == nil {
		opts.Clock = datemath.SystemClock{}
	}

	p := &PickerModel{
		id:    uuid.NewString(),
		ctrl:  calendar.New(datemath.New(date), datemath.New(selected), calendar.WithWeekStart(opts.WeekStart)),
		opts:  opts,
		theme: theme,
	}
	p.labels = opts.Translator.Weekdays(opts.Labels)
	p.syncCursor()
	return p
}

// ID identifies the picker in the messages it emits.
func (p *PickerModel) ID() string {
	return p.id
}

// Controller exposes the underlying state.
func (p *PickerModel) Controller() *calendar.Controller {
	return p.ctrl
}

// Init implements Component.
func (p *PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (p *PickerModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case settleMsg:
		if msg.id != p.id {
			return p, nil
		}
		return p, p.settle(msg.token)
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		return p, p.handleKeyMsg(msg)
	case tea.MouseMsg:
		return p, p.handleMouseMsg(msg)
	}
	return p, nil
}

// handleKeyMsg processes keyboard input for grid navigation.
func (p *PickerModel) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	// The cursor is hidden while a page change settles. The first cursor key
	// commits the page and shows the cursor on it.
	if p.ctrl.Pending() != 0 && isCursorKey(key) {
		return p.commitPending()
	}

	switch key {
	case "h", "left":
		p.moveCursor(-1)
	case "l", "right":
		p.moveCursor(1)
	case "k", "up":
		p.moveCursor(-calendar.Cols)
	case "j", "down":
		p.moveCursor(calendar.Cols)
	case "[", "pgup", "H":
		return p.Prev()
	case "]", "pgdown", "L":
		return p.Next()
	case "enter", " ":
		return p.selectIndex(p.cursor)
	}
	return nil
}

// handleMouseMsg processes clicks on the header and grid and wheel paging.
func (p *PickerModel) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if msg.Action == tea.MouseActionPress {
			return p.Prev()
		}
		return nil
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if msg.Action == tea.MouseActionPress {
			return p.Next()
		}
		return nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	x, y := msg.X-p.originX, msg.Y-p.originY
	gridWidth := p.cellWidth() * calendar.Cols
	if x < 0 || x >= gridWidth || y < 0 {
		return nil
	}

	header := p.headerHeight()
	if y < header {
		if x < gridWidth/2 {
			return p.Prev()
		}
		return p.Next()
	}

	// One line of weekday labels sits between the header and the grid.
	row := y - header - 1
	if row < 0 || row >= calendar.Rows {
		return nil
	}
	return p.selectIndex(row*calendar.Cols + x/p.cellWidth())
}

// Prev pages to the previous month.
func (p *PickerModel) Prev() tea.Cmd {
	return p.page(-1)
}

// Next pages to the next month.
func (p *PickerModel) Next() tea.Cmd {
	return p.page(1)
}

// page shifts right away without a settle delay, otherwise the shift is
// deferred until the delay has passed with no newer page request.
func (p *PickerModel) page(direction int) tea.Cmd {
	if p.opts.SettleDelay <= 0 {
		p.ctrl.PageShift(direction)
		logPage(p.id, p.ctrl.Displayed())
		p.syncCursor()
		return p.dateChanged()
	}

	token := p.ctrl.RequestPage(direction)
	id := p.id
	return tea.Tick(p.opts.SettleDelay, func(time.Time) tea.Msg {
		return settleMsg{id: id, token: token}
	})
}

// commitPending applies a waiting page change right away.
func (p *PickerModel) commitPending() tea.Cmd {
	if !p.ctrl.Flush() {
		return nil
	}
	logPage(p.id, p.ctrl.Displayed())
	p.syncCursor()
	return p.dateChanged()
}

func isCursorKey(key string) bool {
	switch key {
	case "h", "left", "l", "right", "k", "up", "j", "down", "enter", " ":
		return true
	}
	return false
}

func (p *PickerModel) settle(token uint64) tea.Cmd {
	if !p.ctrl.Settle(token) {
		return nil
	}
	logPage(p.id, p.ctrl.Displayed())
	p.syncCursor()
	return p.dateChanged()
}

// selectIndex selects the cell at a raw grid position of the displayed page.
func (p *PickerModel) selectIndex(index int) tea.Cmd {
	if index < 0 || index >= calendar.Cells {
		return nil
	}

	// The grid on screen is the page being moved to.
	flushed := p.ctrl.Flush()

	cell := p.ctrl.Page(p.ctrl.Displayed())[index]
	shift := p.ctrl.SelectCell(cell)
	p.syncCursor()

	id, selected := p.id, p.ctrl.Selected().Time()
	cmds := []tea.Cmd{func() tea.Msg {
		return SelectedDateChangedMsg{ID: id, Date: selected}
	}}
	if shift != 0 || flushed {
		cmds = append(cmds, p.dateChanged())
	}
	return tea.Batch(cmds...)
}

func (p *PickerModel) dateChanged() tea.Cmd {
	id, date := p.id, p.ctrl.Displayed().Time()
	return func() tea.Msg {
		return DateChangedMsg{ID: id, Date: date}
	}
}

func (p *PickerModel) moveCursor(delta int) {
	next := p.cursor + delta
	if next < 0 || next >= calendar.Cells {
		return
	}
	p.cursor = next
}

// syncCursor puts the cursor on the selected day, or on the 1st of the
// month when the selection is not on the displayed page.
func (p *PickerModel) syncCursor() {
	if idx, ok := p.ctrl.IndexOf(p.ctrl.Selected()); ok {
		p.cursor = idx
		return
	}
	if idx, ok := p.ctrl.IndexOf(datemath.FirstOfMonth(p.ctrl.Displayed())); ok {
		p.cursor = idx
	}
}

// SetSize implements Component.
func (p *PickerModel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetOrigin tells the picker where its top-left corner is on screen, so
// mouse coordinates can be mapped to cells.
func (p *PickerModel) SetOrigin(x, y int) {
	p.originX = x
	p.originY = y
}

// Focus sets focus on the picker.
func (p *PickerModel) Focus() {
	p.focused = true
}

// Blur removes focus.
func (p *PickerModel) Blur() {
	p.focused = false
}

// Focused returns focus state.
func (p *PickerModel) Focused() bool {
	return p.focused
}

// Date returns the displayed month anchor.
func (p *PickerModel) Date() time.Time {
	return p.ctrl.Displayed().Time()
}

// SelectedDate returns the selected day.
func (p *PickerModel) SelectedDate() time.Time {
	return p.ctrl.Selected().Time()
}

// SetDate shows t's month.
func (p *PickerModel) SetDate(t time.Time) {
	p.ctrl.SetDate(datemath.New(t))
	p.syncCursor()
}

// SetSelected selects t without paging.
func (p *PickerModel) SetSelected(t time.Time) {
	p.ctrl.SetSelected(datemath.New(t))
	p.syncCursor()
}

// Cursor returns the raw grid position of the keyboard cursor.
func (p *PickerModel) Cursor() int {
	return p.cursor
}

// cellWidth is the widest label or two digits, plus padding on both sides.
func (p *PickerModel) cellWidth() int {
	w := 2
	for _, l := range p.labels {
		if lw := runewidth.StringWidth(l); lw > w {
			w = lw
		}
	}
	w += 2 * p.theme.ItemPadding

	// Shrink to fit the assigned width; labels get truncated in View.
	if p.width > 0 && w*calendar.Cols > p.width {
		w = p.width / calendar.Cols
		if w < 2 {
			w = 2
		}
	}
	return w
}

// headerHeight is the number of lines the header renders to.
func (p *PickerModel) headerHeight() int {
	header := p.renderHeader(p.cellWidth()*calendar.Cols, p.ctrl.Target(), p.ctrl.Pending() != 0)
	return lipgloss.Height(header)
}

// View implements Component.
func (p *PickerModel) View() string {
	cw := p.cellWidth()
	month := p.ctrl.Target()
	paging := p.ctrl.Pending() != 0

	var b strings.Builder
	b.WriteString(p.renderHeader(cw*calendar.Cols, month, paging))
	b.WriteString("\n")

	for _, label := range p.opts.WeekStart.Labels(p.labels) {
		b.WriteString(p.theme.Weekday.Render(center(runewidth.Truncate(label, cw, "…"), cw)))
	}
	b.WriteString("\n")

	today := datemath.Today(p.opts.Clock)
	selected := p.ctrl.Selected()
	page := p.ctrl.Page(month)

	for row := 0; row < calendar.Rows; row++ {
		for col := 0; col < calendar.Cols; col++ {
			idx := row*calendar.Cols + col
			cell := page[idx]
			date := p.ctrl.Resolve(cell, month)
			text := center(strconv.Itoa(cell.Day), cw)

			if datemath.SameDay(date, selected) {
				if p.opts.Selected != nil {
					b.WriteString(p.opts.Selected(text))
				} else {
					b.WriteString(p.theme.Selected.Render(text))
				}
				continue
			}

			style := p.theme.OtherMonth
			if cell.Relation == calendar.Current {
				style = p.theme.Day
				if datemath.SameDay(date, today) {
					style = p.theme.Today
				}
			}
			if paging {
				style = style.Inherit(p.theme.Paging)
			}
			if p.focused && idx == p.cursor && !paging {
				style = style.Inherit(p.theme.Cursor)
			}
			b.WriteString(style.Render(text))
		}
		if row < calendar.Rows-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderHeader renders the month title with the neighboring months.
func (p *PickerModel) renderHeader(width int, month datemath.Date, paging bool) string {
	tr := p.opts.Translator
	ctx := HeaderContext{
		Title:  tr.MonthYear(month.Month(), month.Year()),
		Width:  width,
		Paging: paging,
		Prev:   p.Prev,
		Next:   p.Next,
	}
	if !paging {
		w := p.ctrl.Window()
		ctx.PrevMonth = tr.ShortMonth(w.Previous().Month())
		ctx.NextMonth = tr.ShortMonth(w.Next().Month())
	}

	if p.opts.Header != nil {
		return p.opts.Header(ctx)
	}

	left := p.theme.Arrow.Render(strings.TrimSpace("‹ " + ctx.PrevMonth))
	right := p.theme.Arrow.Render(strings.TrimSpace(ctx.NextMonth + " ›"))
	title := p.theme.Header.Render(ctx.Title)

	gap := width - lipgloss.Width(left) - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 2 {
		return title
	}
	lgap := gap / 2
	return left + strings.Repeat(" ", lgap) + title + strings.Repeat(" ", gap-lgap) + right
}

// center pads s with spaces to width w.
func center(s string, w int) string {
	sw := runewidth.StringWidth(s)
	if sw >= w {
		return s
	}
	left := (w - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", w-sw-left)
}

// logPage records a committed page change.
func logPage(id string, month datemath.Date) {
	slog.Debug("page settled",
		"component", "picker",
		"picker", id,
		"month", month.Format("2006-01"),
	)
}
