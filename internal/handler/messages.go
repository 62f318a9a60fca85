package handler

const (
	msgGreeting = "Привет 👋 Давай попрактикуемся в английском языке. " +
		"Тренировки можешь проходить в удобном для себя темпе. " +
		"Для вызова справки по использованию бота напиши команду /help"

	msgTryAgain     = "Произошла ошибка. Попробуйте позже."
	msgNoRound      = "Нажмите /start или /cards, чтобы начать"
	msgNoWords      = "Все слова скрыты. Добавь новое слово: Добавить слово ➕"
	msgNoActiveWord = "Сейчас нет активного слова для удаления, нажми 'Дальше ⏭'"
	msgWordNotFound = "Слово не найдено или нельзя удалить"
	msgSaveFailed   = "Не удалось сохранить слово. Попробуйте ещё раз."

	helpText = `Принцип работы бота:

1. Бот показывает слово на английском и несколько вариантов перевода на русском.
2. Выбирайте правильный вариант:
   - ✅ Правильный ответ: бот подтверждает и предлагает "Дальше ⏭".
   - ❌ Неправильный ответ: бот отмечает крестиком и дает попробовать снова.
3. Можно добавлять свои слова и скрывать слова для себя.

Команды и кнопки:

/start - запуск бота
/cards - показать карточки со словами
Дальше ⏭ - перейти к следующему слову
Добавить слово ➕ - добавить новое слово
Удалить слово🔙 - скрыть слово для себя
/help - показать эту справку`
)
