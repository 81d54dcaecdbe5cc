package services

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"tourism/internal/domain/models"
	"tourism/internal/repositories"
	"tourism/internal/utils"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// DocsService renders the downloadable booking voucher PDF.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	QRSecret    string
	RequestID   string

	// Loader overrides the booking lookup in tests.
	Loader func(int64) (models.Booking, error)
}

func (s DocsService) loadBooking(bookingID int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.BookingRepo.GetByID(bookingID)
}

// qrPayload signs bookingID|orderID so the voucher can be checked offline.
func (s DocsService) qrPayload(b models.Booking) string {
	data := fmt.Sprintf("%d|%s", b.ID, b.OrderID)
	h := hmac.New(sha256.New, []byte(s.QRSecret))
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// GenerateVoucher returns the voucher PDF bytes and a download filename.
func (s DocsService) GenerateVoucher(bookingID int64) ([]byte, string, error) {
	b, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("booking_id=%d", bookingID))
	return s.buildVoucherPDF(b)
}

func (s DocsService) buildVoucherPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID     : #%d", b.ID),
		fmt.Sprintf("Tour           : %s", safe(b.TourName, "-")),
		fmt.Sprintf("Travel Date    : %s", safe(b.TravelDate, "-")),
		fmt.Sprintf("Booked By      : %s", safe(b.FullName, "-")),
		fmt.Sprintf("Email          : %s", safe(b.Email, "-")),
		fmt.Sprintf("People         : %d", b.NumberOfPeople),
		fmt.Sprintf("Amount Paid    : Rs %s", utils.FormatMoney(b.Amount)),
		fmt.Sprintf("Payment ID     : %s", safe(b.PaymentID, "-")),
		fmt.Sprintf("Order ID       : %s", safe(b.OrderID, "-")),
		fmt.Sprintf("Payment Status : %s", safe(b.PaymentStatus, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Travelers")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for i, t := range b.Travelers {
		pdf.Cell(0, 6, fmt.Sprintf("%d. %s  (Aadhaar %s)", i+1, t.Name, t.AadhaarNumber))
		pdf.Ln(6)
	}

	qrPNG, err := qrcode.Encode(s.qrPayload(b), qrcode.Medium, 256)
	if err != nil {
		return nil, "", err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("voucher-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("voucher-qr", 150, 20, 40, 40, false, opts, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please carry original Aadhaar cards matching the travelers listed above and present this voucher at the pickup point.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%d_%s.pdf", b.ID, safeFilenamePart(b.TourName))
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "X"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	return replacer.Replace(s)
}
