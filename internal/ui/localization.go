package ui

import "github.com/ytget/voicegen/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyText               = "text"
	KeyEnterText          = "enter_text"
	KeyOutputName         = "output_name"
	KeyEnterOutputName    = "enter_output_name"
	KeyVoice              = "voice"
	KeyNarrator           = "narrator"
	KeyNarratorVoice      = "narrator_voice"
	KeyTextNotInside      = "text_not_inside"
	KeyTTSLanguage        = "tts_language"
	KeyTimestamp          = "timestamp"
	KeyAutoplay           = "autoplay"
	KeyVolume             = "volume"
	KeyGenerate           = "generate"
	KeyPlay               = "play"
	KeyCancel             = "cancel"
	KeyReloadVoices       = "reload_voices"
	KeyExit               = "exit"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyBackend            = "backend"
	KeyTextFiltering      = "text_filtering"
	KeySave               = "save"
	KeySettingsSaved      = "settings_saved"
	KeyRestartRequired    = "restart_required"
	KeySuccess            = "success"
	KeyError              = "error"
	KeyNoVoices           = "no_voices"
	KeyStatusIdle         = "status_idle"
	KeyStatusPending      = "status_pending"
	KeyStatusRunning      = "status_running"
	KeyStatusCancelling   = "status_cancelling"
	KeyStatusCompleted    = "status_completed"
	KeyStatusFailed       = "status_failed"
	KeyStatusCancelled    = "status_cancelled"
	KeyErrorOpeningFile   = "error_opening_file"
	KeyRevealOutput       = "reveal_output"
	KeyInterfaceLanguage  = "interface_language"
	KeyGenerationSettings = "generation_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// StatusText returns the label for a job status
func (l *Localization) StatusText(status model.JobStatus) string {
	switch status {
	case model.JobStatusPending:
		return l.GetText(KeyStatusPending)
	case model.JobStatusRunning:
		return l.GetText(KeyStatusRunning)
	case model.JobStatusCancelling:
		return l.GetText(KeyStatusCancelling)
	case model.JobStatusCompleted:
		return l.GetText(KeyStatusCompleted)
	case model.JobStatusFailed:
		return l.GetText(KeyStatusFailed)
	case model.JobStatusCancelled:
		return l.GetText(KeyStatusCancelled)
	default:
		return status.String()
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Voice Generator",
		KeyText:               "Text",
		KeyEnterText:          "Enter text to speak",
		KeyOutputName:         "Output file name",
		KeyEnterOutputName:    "e.g. greeting",
		KeyVoice:              "Voice",
		KeyNarrator:           "Narrator",
		KeyNarratorVoice:      "Narrator voice",
		KeyTextNotInside:      "Text outside quotes",
		KeyTTSLanguage:        "Speech language",
		KeyTimestamp:          "Add timestamp",
		KeyAutoplay:           "Autoplay",
		KeyVolume:             "Volume",
		KeyGenerate:           "Generate",
		KeyPlay:               "Play",
		KeyCancel:             "Cancel",
		KeyReloadVoices:       "Reload voices",
		KeyExit:               "Exit",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyBackend:            "Service",
		KeyTextFiltering:      "Text filtering",
		KeySave:               "Save",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyRestartRequired:    "The new service will be used after restart.",
		KeySuccess:            "Success",
		KeyError:              "Error",
		KeyNoVoices:           "No voices",
		KeyStatusIdle:         "Ready",
		KeyStatusPending:      "Pending",
		KeyStatusRunning:      "Generating...",
		KeyStatusCancelling:   "Cancelling...",
		KeyStatusCompleted:    "Done",
		KeyStatusFailed:       "Failed",
		KeyStatusCancelled:    "Cancelled",
		KeyErrorOpeningFile:   "Error opening file",
		KeyRevealOutput:       "Show in folder",
		KeyInterfaceLanguage:  "Interface language",
		KeyGenerationSettings: "Generation",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Генератор голоса",
		KeyText:               "Текст",
		KeyEnterText:          "Введите текст для озвучивания",
		KeyOutputName:         "Имя выходного файла",
		KeyEnterOutputName:    "например, greeting",
		KeyVoice:              "Голос",
		KeyNarrator:           "Рассказчик",
		KeyNarratorVoice:      "Голос рассказчика",
		KeyTextNotInside:      "Текст вне кавычек",
		KeyTTSLanguage:        "Язык речи",
		KeyTimestamp:          "Добавить время",
		KeyAutoplay:           "Автовоспроизведение",
		KeyVolume:             "Громкость",
		KeyGenerate:           "Сгенерировать",
		KeyPlay:               "Воспроизвести",
		KeyCancel:             "Отмена",
		KeyReloadVoices:       "Обновить голоса",
		KeyExit:               "Выход",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyBackend:            "Сервис",
		KeyTextFiltering:      "Фильтрация текста",
		KeySave:               "Сохранить",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyRestartRequired:    "Новый сервис будет использован после перезапуска.",
		KeySuccess:            "Готово",
		KeyError:              "Ошибка",
		KeyNoVoices:           "Нет голосов",
		KeyStatusIdle:         "Готов",
		KeyStatusPending:      "В очереди",
		KeyStatusRunning:      "Генерация...",
		KeyStatusCancelling:   "Отмена...",
		KeyStatusCompleted:    "Завершено",
		KeyStatusFailed:       "Ошибка",
		KeyStatusCancelled:    "Отменено",
		KeyErrorOpeningFile:   "Ошибка открытия файла",
		KeyRevealOutput:       "Показать в папке",
		KeyInterfaceLanguage:  "Язык интерфейса",
		KeyGenerationSettings: "Генерация",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Gerador de Voz",
		KeyText:               "Texto",
		KeyEnterText:          "Digite o texto a ser falado",
		KeyOutputName:         "Nome do arquivo de saída",
		KeyEnterOutputName:    "ex.: greeting",
		KeyVoice:              "Voz",
		KeyNarrator:           "Narrador",
		KeyNarratorVoice:      "Voz do narrador",
		KeyTextNotInside:      "Texto fora das aspas",
		KeyTTSLanguage:        "Idioma da fala",
		KeyTimestamp:          "Adicionar data e hora",
		KeyAutoplay:           "Reprodução automática",
		KeyVolume:             "Volume",
		KeyGenerate:           "Gerar",
		KeyPlay:               "Reproduzir",
		KeyCancel:             "Cancelar",
		KeyReloadVoices:       "Recarregar vozes",
		KeyExit:               "Sair",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyBackend:            "Serviço",
		KeyTextFiltering:      "Filtragem de texto",
		KeySave:               "Salvar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyRestartRequired:    "O novo serviço será usado após reiniciar.",
		KeySuccess:            "Sucesso",
		KeyError:              "Erro",
		KeyNoVoices:           "Sem vozes",
		KeyStatusIdle:         "Pronto",
		KeyStatusPending:      "Pendente",
		KeyStatusRunning:      "Gerando...",
		KeyStatusCancelling:   "Cancelando...",
		KeyStatusCompleted:    "Concluído",
		KeyStatusFailed:       "Falhou",
		KeyStatusCancelled:    "Cancelado",
		KeyErrorOpeningFile:   "Erro ao abrir arquivo",
		KeyRevealOutput:       "Mostrar na pasta",
		KeyInterfaceLanguage:  "Idioma da interface",
		KeyGenerationSettings: "Geração",
	}
}
