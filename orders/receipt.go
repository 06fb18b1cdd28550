package orders

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/kiruthika18-a/codealpha-E-commerce-store/models"
)

// BuildReceiptPDF renders a one-page receipt for a placed order, with a
// QR code carrying the order reference for pickup scanning.
func BuildReceiptPDF(order models.Order) ([]byte, error) {
	qrData := fmt.Sprintf("oid=%s&uid=%s&ts=%d", order.ID, order.UserID, time.Now().Unix())
	qrCode, err := qrcode.Encode(qrData, qrcode.Medium, 128)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, "Order Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Order info
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Order ID: %s\nCustomer: %s\nPlaced: %s",
		order.ID,
		order.UserID,
		order.Date.Format("02 Jan 2006 15:04"),
	), "", "L", false)
	pdf.Ln(5)

	// Line items
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(100, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Price", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, item := range order.Items {
		pdf.CellFormat(100, 8, item.Product.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", item.Product.Price), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(130, 10, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 10, order.Total, "T", 1, "R", false, 0, "")

	// QR code
	imgOpts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrCode))
	pdf.ImageOptions("qr", 150, 230, 40, 40, false, imgOpts, 0, "")

	// Footer
	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 10, "Thank you for shopping with us.", "T", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
