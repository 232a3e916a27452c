package models

// TokenPair — пара токенов, выдаваемая бэкендом при логине/регистрации.
//
// Access — короткоживущий JWT, прикладывается к каждому запросу;
// Refresh — долгоживущий токен, предъявляется только для выпуска нового
// access-токена. Бэкенд не ротирует refresh при обновлении: ответ
// refresh-эндпойнта содержит лишь новый access.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Empty сообщает, что пара не содержит ни одного токена.
func (p TokenPair) Empty() bool {
	return p.Access == "" && p.Refresh == ""
}
