// Package slip renders one order as a standalone printable picking ticket.
// The document is self-contained HTML; the browser's print dialog does the
// rest.
package slip

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dreamworld/wms-console/internal/domain/models"
)

type lineView struct {
	Bin         string
	SKU         string
	Description string
	ItemType    string
	Qty         int
	Price       string
}

type slipView struct {
	PickNumber     string
	Date           string
	Customer       string
	CustomerPhone  string
	Address        string
	Carrier        string
	TrackingNumber string
	Lines          []lineView
	Subtotal       string
}

// Render writes the printable document for the given order.
func Render(w io.Writer, order models.Order) error {
	view := slipView{
		PickNumber:     fmt.Sprintf("PICK-%s", order.OrderID),
		Date:           order.Timestamp.Format("Jan 2, 2006"),
		Customer:       order.Customer,
		CustomerPhone:  order.CustomerPhone,
		Address:        order.Address,
		Carrier:        order.Carrier,
		TrackingNumber: order.TrackingNumber,
		Subtotal:       order.Subtotal.StringFixed(2),
	}
	for _, line := range order.Lines {
		view.Lines = append(view.Lines, lineView{
			Bin:         line.Bin,
			SKU:         line.SKU,
			Description: line.Description,
			ItemType:    line.ItemType,
			Qty:         line.Qty,
			Price:       line.Price.StringFixed(2),
		})
	}
	if view.Date == "" || order.Timestamp.IsZero() {
		view.Date = time.Now().Format("Jan 2, 2006")
	}
	return slipTemplate.Execute(w, view)
}

// LineTotal is exposed for the template: qty times unit price.
func lineTotal(qty int, price string) string {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return "0.00"
	}
	return p.Mul(decimal.NewFromInt(int64(qty))).StringFixed(2)
}

var slipTemplate = template.Must(template.New("slip").Funcs(template.FuncMap{
	"lineTotal": lineTotal,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Picking Ticket {{.PickNumber}}</title>
<style>
  body { font-family: Arial, sans-serif; margin: 40px; color: #111; }
  h1 { font-size: 22px; letter-spacing: 2px; }
  .head { display: flex; justify-content: space-between; }
  .meta { text-align: right; font-size: 13px; }
  .parties { display: flex; gap: 60px; margin: 24px 0; font-size: 13px; }
  .parties h2 { font-size: 12px; text-transform: uppercase; color: #555; }
  table { width: 100%; border-collapse: collapse; font-size: 13px; }
  th, td { border: 1px solid #999; padding: 6px 8px; text-align: left; }
  th { background: #eee; text-transform: uppercase; font-size: 11px; }
  td.num, th.num { text-align: right; }
  .totals { margin-top: 16px; text-align: right; font-size: 14px; }
  .print-btn { margin-top: 24px; padding: 8px 20px; font-size: 14px; }
  @media print { .print-btn { display: none; } }
</style>
</head>
<body>
<div class="head">
  <h1>PICKING TICKET</h1>
  <div class="meta">
    <div><strong>{{.PickNumber}}</strong></div>
    <div>{{.Date}}</div>
    {{if .Carrier}}<div>Carrier: {{.Carrier}}</div>{{end}}
    {{if .TrackingNumber}}<div>Tracking: {{.TrackingNumber}}</div>{{end}}
  </div>
</div>
<div class="parties">
  <div>
    <h2>Sold To</h2>
    <div>{{.Customer}}</div>
    {{if .CustomerPhone}}<div>{{.CustomerPhone}}</div>{{end}}
  </div>
  <div>
    <h2>Ship To</h2>
    <div>{{.Customer}}</div>
    <div>{{.Address}}</div>
  </div>
</div>
<table>
  <thead>
    <tr>
      <th>Bin</th><th>SKU</th><th>Description</th><th>Type</th>
      <th class="num">O-QTY</th><th class="num">S-QTY</th><th class="num">Unit Price</th><th class="num">Total</th>
    </tr>
  </thead>
  <tbody>
    {{range .Lines}}
    <tr>
      <td>{{.Bin}}</td><td>{{.SKU}}</td><td>{{.Description}}</td><td>{{.ItemType}}</td>
      <td class="num">{{.Qty}}</td><td class="num"></td><td class="num">{{.Price}}</td><td class="num">{{lineTotal .Qty .Price}}</td>
    </tr>
    {{end}}
  </tbody>
</table>
<div class="totals">Subtotal: <strong>{{.Subtotal}}</strong></div>
<button class="print-btn" onclick="window.print()">Print</button>
</body>
</html>
`))
