package locales

// MessagesUZ Uzbek translations
var MessagesUZ = map[string]string{
	// Common messages
	"common.success": "Muvaffaqiyatli",
	"common.error":   "Amaliyot bajarilmadi",

	// Authentication related
	"auth.login_success":     "Tizimga muvaffaqiyatli kirdingiz",
	"auth.logout_success":    "Tizimdan chiqdingiz",
	"auth.invalid_creds":     "Login yoki parol noto'g'ri",
	"auth.password_changed":  "Parol muvaffaqiyatli yangilandi",
	"auth.password_mismatch": "Yangi parollar mos kelmadi",
	"auth.password_short":    "Yangi parol kamida {{.Min}} ta belgidan iborat bo'lishi kerak",

	// Content entities
	"course.created":      "Kurs muvaffaqiyatli yaratildi",
	"course.updated":      "Kurs muvaffaqiyatli yangilandi",
	"course.deleted":      "Kurs muvaffaqiyatli o'chirildi",
	"instructor.created":  "O'qituvchi muvaffaqiyatli qo'shildi",
	"instructor.updated":  "O'qituvchi muvaffaqiyatli yangilandi",
	"instructor.deleted":  "O'qituvchi muvaffaqiyatli o'chirildi",
	"testimonial.created": "Fikr muvaffaqiyatli yaratildi",
	"testimonial.updated": "Fikr muvaffaqiyatli yangilandi",
	"testimonial.deleted": "Fikr muvaffaqiyatli o'chirildi",
	"pricing.created":     "Tarif muvaffaqiyatli yaratildi",
	"pricing.updated":     "Tarif muvaffaqiyatli yangilandi",
	"pricing.deleted":     "Tarif muvaffaqiyatli o'chirildi",

	// Site settings and contact
	"settings.updated":   "Sozlamalar muvaffaqiyatli saqlandi",
	"contact.submitted":  "Rahmat! Tez orada siz bilan bog'lanamiz",
	"submission.updated": "Xabar yangilandi",
	"submission.deleted": "Xabar o'chirildi",
}
