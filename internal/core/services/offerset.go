package services

// OfferSet хранит идентификаторы товаров, полученные от маркетплейса,
// с сохранением порядка выдачи. Повторные идентификаторы схлопываются:
// площадки гарантируют уникальность, но дубль в ответе не должен
// приводить к двойному обнулению остатка.
type OfferSet struct {
	order   []string
	members map[string]struct{}
}

func NewOfferSet(ids []string) *OfferSet {
	s := &OfferSet{members: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s *OfferSet) Add(id string) {
	if _, ok := s.members[id]; ok {
		return
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *OfferSet) Contains(id string) bool {
	_, ok := s.members[id]
	return ok
}

// Remove исключает идентификатор из набора. Порядок оставшихся не меняется.
func (s *OfferSet) Remove(id string) {
	delete(s.members, id)
}

func (s *OfferSet) Len() int {
	return len(s.members)
}

// Remaining возвращает не исключённые идентификаторы в порядке добавления.
func (s *OfferSet) Remaining() []string {
	remaining := make([]string, 0, len(s.members))
	for _, id := range s.order {
		if _, ok := s.members[id]; ok {
			remaining = append(remaining, id)
		}
	}
	return remaining
}
