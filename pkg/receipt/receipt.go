// Package receipt renders PDF receipts for persisted orders.
package receipt

import (
	"bytes"
	"fmt"

	"pos_api/internal/models"

	"github.com/jung-kurt/gofpdf"
)

type BusinessInfo struct {
	Name    string
	Address string
	Phone   string
}

// Render produces a printable A4 receipt for the order. The order must be
// loaded with its items, products, user and (optional) customer.
func Render(order *models.Order, business BusinessInfo) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Receipt %s", order.Code), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 8, business.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	if business.Address != "" {
		pdf.CellFormat(0, 5, business.Address, "", 1, "C", false, 0, "")
	}
	if business.Phone != "" {
		pdf.CellFormat(0, 5, business.Phone, "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Order: %s", order.Code), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02 Jan 2006 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Cashier: %s", order.User.Username), "", 1, "L", false, 0, "")
	if order.Customer != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Customer: %s", order.Customer.Name), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, 7, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 7, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Subtotal", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range order.Items {
		pdf.CellFormat(80, 7, item.Product.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, formatAmount(item.UnitPrice), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, formatAmount(item.Subtotal), "", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(140, 7, "Subtotal", "T", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, formatAmount(order.Subtotal), "T", 1, "R", false, 0, "")
	if order.DiscountAmount > 0 {
		pdf.CellFormat(140, 7, "Discount", "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, "-"+formatAmount(order.DiscountAmount), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(140, 8, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, formatAmount(order.TotalAmount), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.Ln(2)
	pdf.CellFormat(0, 6, fmt.Sprintf("Payment: %s", order.PaymentType), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.CellFormat(0, 6, "Thank you for your purchase!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	return fmt.Sprintf("Rp %.2f", v)
}
