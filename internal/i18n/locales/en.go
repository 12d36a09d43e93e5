package locales

// MessagesEN English translations
var MessagesEN = map[string]string{
	// Common messages
	"common.success": "Success",
	"common.error":   "Operation failed",

	// Authentication related
	"auth.login_success":     "Login successful",
	"auth.logout_success":    "Logout successful",
	"auth.invalid_creds":     "Invalid credentials",
	"auth.password_changed":  "Password updated successfully",
	"auth.password_mismatch": "New passwords do not match",
	"auth.password_short":    "New password must be at least {{.Min}} characters",

	// Content entities
	"course.created":      "Course created successfully",
	"course.updated":      "Course updated successfully",
	"course.deleted":      "Course deleted successfully",
	"instructor.created":  "Instructor created successfully",
	"instructor.updated":  "Instructor updated successfully",
	"instructor.deleted":  "Instructor deleted successfully",
	"testimonial.created": "Testimonial created successfully",
	"testimonial.updated": "Testimonial updated successfully",
	"testimonial.deleted": "Testimonial deleted successfully",
	"pricing.created":     "Pricing plan created successfully",
	"pricing.updated":     "Pricing plan updated successfully",
	"pricing.deleted":     "Pricing plan deleted successfully",

	// Site settings and contact
	"settings.updated":   "Settings updated successfully",
	"contact.submitted":  "Thank you! We will contact you shortly",
	"submission.updated": "Message updated",
	"submission.deleted": "Message deleted",
}
