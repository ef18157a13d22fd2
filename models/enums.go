package models

type ProgramType int

const (
	TypePodcast ProgramType = iota + 1
	TypeDocumentary
	TypeInterview
	TypeTutorial
	TypeNews
)

func (t ProgramType) Valid() bool {
	return t >= TypePodcast && t <= TypeNews
}

func (t ProgramType) String() string {
	switch t {
	case TypePodcast:
		return "Podcast"
	case TypeDocumentary:
		return "Documentary"
	case TypeInterview:
		return "Interview"
	case TypeTutorial:
		return "Tutorial"
	case TypeNews:
		return "News"
	default:
		return "Unknown"
	}
}

type Language int

const (
	LanguageArabic Language = iota + 1
	LanguageEnglish
	LanguageFrench
	LanguageSpanish
)

func (l Language) Valid() bool {
	return l >= LanguageArabic && l <= LanguageSpanish
}

func (l Language) String() string {
	switch l {
	case LanguageArabic:
		return "Arabic"
	case LanguageEnglish:
		return "English"
	case LanguageFrench:
		return "French"
	case LanguageSpanish:
		return "Spanish"
	default:
		return "Unknown"
	}
}

type ProgramStatus int

const (
	StatusDraft ProgramStatus = iota + 1
	StatusUnderReview
	StatusPublished
	StatusArchived
	StatusRejected
)

// StatusAll is the editorial sentinel for "no status filter".
const StatusAll ProgramStatus = 0

func (s ProgramStatus) Valid() bool {
	return s >= StatusDraft && s <= StatusRejected
}

func (s ProgramStatus) String() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusUnderReview:
		return "UnderReview"
	case StatusPublished:
		return "Published"
	case StatusArchived:
		return "Archived"
	case StatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}
