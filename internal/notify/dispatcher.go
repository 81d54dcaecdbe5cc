package notify

import (
	"fmt"
	"strings"

	"tourism/internal/domain/models"
	"tourism/internal/utils"
)

// Dispatcher sends operational emails on a best-effort basis. Every send is
// independent; a failure is logged and swallowed, never returned. Callers on
// a request path should invoke it from a goroutine after their own write has
// committed.
type Dispatcher struct {
	Sender        Sender
	OperatorEmail string
	RequestID     string
}

// BookingConfirmed sends the operator summary and the customer confirmation
// for a freshly persisted booking. Failure of one send does not prevent the
// other.
func (d Dispatcher) BookingConfirmed(b models.Booking) {
	if d.Sender == nil {
		utils.LogEvent(d.RequestID, "notify", "booking_confirmed", "sender not configured, skipping")
		return
	}

	amount := utils.FormatRupee(b.Amount)

	if err := d.Sender.Send(
		d.OperatorEmail,
		fmt.Sprintf("New Booking Confirmed: %s - %s", b.TourName, amount),
		renderOperatorBooking(b, amount),
	); err != nil {
		utils.LogEvent(d.RequestID, "notify", "booking_confirmed", "operator email failed: "+err.Error())
	}

	if err := d.Sender.Send(
		b.Email,
		fmt.Sprintf("Booking Confirmed: %s | OrbitRush Tourism", b.TourName),
		renderCustomerBooking(b, amount),
	); err != nil {
		utils.LogEvent(d.RequestID, "notify", "booking_confirmed", "customer email failed: "+err.Error())
	}
}

// EnquiryReceived notifies the operator about a new enquiry.
func (d Dispatcher) EnquiryReceived(e models.Enquiry) {
	if d.Sender == nil {
		utils.LogEvent(d.RequestID, "notify", "enquiry_received", "sender not configured, skipping")
		return
	}

	if err := d.Sender.Send(
		d.OperatorEmail,
		fmt.Sprintf("New Enquiry: %s from %s", e.TourName, e.FullName),
		renderEnquiry(e),
	); err != nil {
		utils.LogEvent(d.RequestID, "notify", "enquiry_received", "operator email failed: "+err.Error())
	}
}

// PasswordResetOTP mails a reset code to the account owner.
func (d Dispatcher) PasswordResetOTP(email, otp string) {
	if d.Sender == nil {
		utils.LogEvent(d.RequestID, "notify", "password_reset_otp", "sender not configured, skipping")
		return
	}

	body := fmt.Sprintf("<p>Your OTP is <strong>%s</strong>. It expires in 5 minutes.</p>", otp)
	if err := d.Sender.Send(email, "Your Password Reset OTP", body); err != nil {
		utils.LogEvent(d.RequestID, "notify", "password_reset_otp", "email failed: "+err.Error())
	}
}

func travelersTable(travelers []models.Traveler) string {
	var sb strings.Builder
	sb.WriteString("<table border=\"1\" cellpadding=\"6\"><tr><th>#</th><th>Name</th><th>Aadhaar Number</th></tr>")
	for i, t := range travelers {
		fmt.Fprintf(&sb, "<tr><td>%d</td><td>%s</td><td>%s</td></tr>", i+1, t.Name, t.AadhaarNumber)
	}
	sb.WriteString("</table>")
	return sb.String()
}

func renderOperatorBooking(b models.Booking, amount string) string {
	var sb strings.Builder
	sb.WriteString("<h2>New Booking Alert</h2>")
	fmt.Fprintf(&sb, "<p><strong>Amount:</strong> %s</p>", amount)
	fmt.Fprintf(&sb, "<p><strong>Payment ID:</strong> %s<br><strong>Order ID:</strong> %s</p>", b.PaymentID, b.OrderID)
	fmt.Fprintf(&sb, "<p><strong>Tour:</strong> %s<br><strong>Travel Date:</strong> %s<br><strong>People:</strong> %d</p>",
		b.TourName, b.TravelDate, b.NumberOfPeople)
	fmt.Fprintf(&sb, "<p><strong>Customer:</strong> %s (%s)</p>", b.FullName, b.Email)
	sb.WriteString(travelersTable(b.Travelers))
	return sb.String()
}

func renderCustomerBooking(b models.Booking, amount string) string {
	var sb strings.Builder
	sb.WriteString("<h2>Booking Confirmed!</h2>")
	fmt.Fprintf(&sb, "<p>Dear <strong>%s</strong>,<br>Thank you for booking with OrbitRush Tourism! Your payment has been successfully processed and your booking is confirmed.</p>", b.FullName)
	fmt.Fprintf(&sb, "<p><strong>Booking ID:</strong> %d</p>", b.ID)
	fmt.Fprintf(&sb, "<p><strong>Tour Package:</strong> %s<br><strong>Travel Date:</strong> %s<br><strong>Number of Travelers:</strong> %d<br><strong>Total Amount Paid:</strong> %s</p>",
		b.TourName, b.TravelDate, b.NumberOfPeople, amount)
	sb.WriteString(travelersTable(b.Travelers))
	fmt.Fprintf(&sb, "<p><strong>Payment ID:</strong> %s<br><strong>Order ID:</strong> %s</p>", b.PaymentID, b.OrderID)
	sb.WriteString("<p>Our team will contact you within 24 hours with pickup details. Please carry original Aadhaar cards for all travelers.</p>")
	return sb.String()
}

func renderEnquiry(e models.Enquiry) string {
	var sb strings.Builder
	sb.WriteString("<h2>New Tour Enquiry</h2>")
	fmt.Fprintf(&sb, "<p><strong>From:</strong> %s (%s, %s)</p>", e.FullName, e.Email, e.Phone)
	fmt.Fprintf(&sb, "<p><strong>Tour:</strong> %s<br><strong>People:</strong> %d", e.TourName, e.NumberOfPeople)
	if e.PreferredDate != "" {
		fmt.Fprintf(&sb, "<br><strong>Preferred Date:</strong> %s", e.PreferredDate)
	}
	sb.WriteString("</p>")
	fmt.Fprintf(&sb, "<p>%s</p>", e.Message)
	return sb.String()
}
