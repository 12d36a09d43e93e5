package locales

// MessagesRU Russian translations
var MessagesRU = map[string]string{
	// Common messages
	"common.success": "Успешно",
	"common.error":   "Операция не удалась",

	// Authentication related
	"auth.login_success":     "Вход выполнен успешно",
	"auth.logout_success":    "Выход выполнен успешно",
	"auth.invalid_creds":     "Неверные учетные данные",
	"auth.password_changed":  "Пароль успешно обновлен",
	"auth.password_mismatch": "Новые пароли не совпадают",
	"auth.password_short":    "Новый пароль должен содержать не менее {{.Min}} символов",

	// Content entities
	"course.created":      "Курс успешно создан",
	"course.updated":      "Курс успешно обновлен",
	"course.deleted":      "Курс успешно удален",
	"instructor.created":  "Преподаватель успешно добавлен",
	"instructor.updated":  "Преподаватель успешно обновлен",
	"instructor.deleted":  "Преподаватель успешно удален",
	"testimonial.created": "Отзыв успешно создан",
	"testimonial.updated": "Отзыв успешно обновлен",
	"testimonial.deleted": "Отзыв успешно удален",
	"pricing.created":     "Тариф успешно создан",
	"pricing.updated":     "Тариф успешно обновлен",
	"pricing.deleted":     "Тариф успешно удален",

	// Site settings and contact
	"settings.updated":   "Настройки успешно сохранены",
	"contact.submitted":  "Спасибо! Мы свяжемся с вами в ближайшее время",
	"submission.updated": "Сообщение обновлено",
	"submission.deleted": "Сообщение удалено",
}
