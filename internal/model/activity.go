// Package model содержит доменные структуры для внеклассных занятий и их участников
package model

// Activity описывает внеклассное занятие: описание, расписание, вместимость и список участников.
// Имя занятия хранится только как ключ в Catalog.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone возвращает копию занятия с собственным слайсом участников.
func (a Activity) Clone() Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	a.Participants = participants
	return a
}

// HasParticipant сообщает, записан ли email на занятие.
func (a Activity) HasParticipant(email string) bool {
	return a.participantIndex(email) >= 0
}

// OverCapacity показывает, что участников больше, чем MaxParticipants.
// Вместимость носит справочный характер и не ограничивает запись.
func (a Activity) OverCapacity() bool {
	return len(a.Participants) > a.MaxParticipants
}

func (a Activity) participantIndex(email string) int {
	for i, p := range a.Participants {
		if p == email {
			return i
		}
	}
	return -1
}

// WithoutParticipant возвращает копию занятия без указанного email, сохраняя порядок остальных.
func (a Activity) WithoutParticipant(email string) Activity {
	out := a.Clone()
	idx := out.participantIndex(email)
	if idx < 0 {
		return out
	}
	out.Participants = append(out.Participants[:idx], out.Participants[idx+1:]...)
	return out
}

// Catalog отображает имя занятия на его описание.
type Catalog map[string]Activity

// Clone возвращает глубокую копию каталога.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for name, a := range c {
		out[name] = a.Clone()
	}
	return out
}
