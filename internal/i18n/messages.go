package i18n

var messages = map[string]map[string]string{
	LocaleEN: {
		"success.registered":             "User registered successfully",
		"success.logged_in":              "Logged in successfully",
		"success.profile_updated":        "Profile updated successfully",
		"success.basket_added":           "Item added to basket",
		"success.basket_updated":         "Basket updated",
		"success.basket_removed":         "Item removed from basket",
		"success.basket_cleared":         "Basket cleared",
		"success.ok":                     "ok",
		"error.bad_request":              "Invalid request",
		"error.credentials_required":     "Email and password are required",
		"error.email_exists":             "A user with this email already exists",
		"error.invalid_credentials":      "Invalid email or password",
		"error.token_missing":            "Authorization token is missing",
		"error.token_invalid":            "Invalid or expired token",
		"error.user_not_found":           "User not found",
		"error.product_not_found":        "Product not found",
		"error.basket_item_invalid":      "Product ID and size are required",
		"error.quantity_invalid":         "Quantity must be positive",
		"error.basket_item_not_found":    "Basket item not found",
		"error.not_found":                "Not found",
		"error.too_many_requests":        "Too many attempts, please try again later",
		"error.internal":                 "Internal server error",
		"error.password_min_length":      "Password must be at least %d characters",
		"error.password_max_length":      "Password must be at most %d bytes",
		"error.password_require_upper":   "Password must contain an uppercase letter",
		"error.password_require_lower":   "Password must contain a lowercase letter",
		"error.password_require_number":  "Password must contain a digit",
		"error.password_require_special": "Password must contain a special character",
	},
	LocaleRU: {
		"success.registered":             "Пользователь успешно зарегистрирован",
		"success.logged_in":              "Вход выполнен успешно",
		"success.profile_updated":        "Профиль успешно обновлен",
		"success.basket_added":           "Товар добавлен в корзину",
		"success.basket_updated":         "Корзина обновлена",
		"success.basket_removed":         "Товар удален из корзины",
		"success.basket_cleared":         "Корзина очищена",
		"success.ok":                     "ok",
		"error.bad_request":              "Некорректный запрос",
		"error.credentials_required":     "Email и пароль обязательны",
		"error.email_exists":             "Пользователь с таким email уже существует",
		"error.invalid_credentials":      "Неверный email или пароль",
		"error.token_missing":            "Токен авторизации отсутствует",
		"error.token_invalid":            "Недействительный или просроченный токен",
		"error.user_not_found":           "Пользователь не найден",
		"error.product_not_found":        "Товар не найден",
		"error.basket_item_invalid":      "Необходимо указать товар и размер",
		"error.quantity_invalid":         "Количество должно быть положительным",
		"error.basket_item_not_found":    "Товар в корзине не найден",
		"error.not_found":                "Не найдено",
		"error.too_many_requests":        "Слишком много попыток, попробуйте позже",
		"error.internal":                 "Внутренняя ошибка сервера",
		"error.password_min_length":      "Пароль должен содержать не менее %d символов",
		"error.password_max_length":      "Пароль не должен превышать %d байт",
		"error.password_require_upper":   "Пароль должен содержать заглавную букву",
		"error.password_require_lower":   "Пароль должен содержать строчную букву",
		"error.password_require_number":  "Пароль должен содержать цифру",
		"error.password_require_special": "Пароль должен содержать специальный символ",
	},
}
