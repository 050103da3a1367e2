// Package tui is the terminal presentation shell: session gate, the three
// work tabs, the modals, and the key bindings that drive the view-models.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/dreamworld/wms-console/internal/domain/models"
	"github.com/dreamworld/wms-console/internal/repository/sheets"
	"github.com/dreamworld/wms-console/internal/service/inventory"
	"github.com/dreamworld/wms-console/internal/service/orders"
	"github.com/dreamworld/wms-console/internal/service/session"
)

type appState int

const (
	stateChecking appState = iota
	stateLogin
	stateMain
)

type tab int

const (
	tabInventory tab = iota
	tabOrders
	tabAnalytics
)

var tabTitles = map[tab]string{
	tabInventory: "Inventory",
	tabOrders:    "Orders",
	tabAnalytics: "Analytics",
}

type modal int

const (
	modalNone modal = iota
	modalEditItem
	modalOrderDetail
	modalStatusPicker
)

// sortCycle is the column order the sort hotkey walks through.
var sortCycle = []inventory.SortKey{
	inventory.SortBySKU,
	inventory.SortByDescription,
	inventory.SortByType,
	inventory.SortByBin,
	inventory.SortByDSU,
	inventory.SortByQty,
	inventory.SortByPrice,
}

type loginForm struct {
	username textinput.Model
	password textinput.Model
	focus    int
	busy     bool
	errMsg   string
}

type inventoryPane struct {
	search        textinput.Model
	searchFocused bool
	cursor        int
	typeIdx       int // 0 means all types
	binIdx        int // 0 means all bins
	sortIdx       int // index into sortCycle, -1 before first sort
}

// itemEditor is the transient state of the edit-item modal. The quantity is
// a plain integer adjusted by keyboard deltas; the price field rejects
// anything beyond two decimal places while typing.
type itemEditor struct {
	item   models.Item
	desc   textinput.Model
	bin    textinput.Model
	dsu    textinput.Model
	typ    textinput.Model
	price  textinput.Model
	qty    int
	focus  int
	fields int
}

type ordersPane struct {
	cursor       int
	detailID     string
	carrier      textinput.Model
	tracking     textinput.Model
	detailFocus  int
	pickerCursor int
}

type analyticsPane struct {
	exporting  bool
	exportNote string
}

// Model is the whole Bubble Tea application state.
type Model struct {
	logger *zap.Logger

	session   *session.Service
	inventory *inventory.Service
	orders    *orders.Service
	exporter  sheets.Exporter // nil when export is unconfigured
	printAddr string

	width  int
	height int

	state   appState
	tab     tab
	modal   modal
	spinner spinner.Model

	banner      string
	bannerError bool

	login  loginForm
	inv    inventoryPane
	editor *itemEditor
	ord    ordersPane
	ana    analyticsPane
}

// Deps carries everything the shell needs from the composition root.
type Deps struct {
	Logger    *zap.Logger
	Session   *session.Service
	Inventory *inventory.Service
	Orders    *orders.Service
	Exporter  sheets.Exporter
	PrintAddr string
}

// New assembles the initial model in the session-checking state.
func New(deps Deps) Model {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	search := textinput.New()
	search.Placeholder = "search sku, description or bin"
	search.CharLimit = 64

	carrier := textinput.New()
	carrier.Placeholder = "carrier"
	carrier.CharLimit = 40

	tracking := textinput.New()
	tracking.Placeholder = "tracking number"
	tracking.CharLimit = 60

	return Model{
		logger:    logger.Named("tui"),
		session:   deps.Session,
		inventory: deps.Inventory,
		orders:    deps.Orders,
		exporter:  deps.Exporter,
		printAddr: deps.PrintAddr,
		state:     stateChecking,
		tab:       tabInventory,
		spinner:   sp,
		login:     loginForm{username: username, password: password},
		inv:       inventoryPane{search: search, sortIdx: -1},
		ord:       ordersPane{carrier: carrier, tracking: tracking},
	}
}

// Init starts the spinner and fires the one startup session probe.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.checkSessionCmd())
}

func newItemEditor(item models.Item) *itemEditor {
	mk := func(value, placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.SetValue(value)
		return in
	}

	ed := &itemEditor{
		item:   item,
		desc:   mk(item.Description, "description", 120),
		bin:    mk(item.Bin, "bin", 20),
		dsu:    mk(item.DSU, "unit", 20),
		typ:    mk(item.ItemType, "type", 40),
		price:  mk(item.Price.StringFixed(2), "0.00", 12),
		qty:    item.Qty,
		fields: 6,
	}
	ed.desc.Focus()
	return ed
}
