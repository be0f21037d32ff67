package mapper

import (
	"time"

	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/model"
)

type MatchMapper struct{}

func NewMatchMapper() *MatchMapper {
	return &MatchMapper{}
}

func (m *MatchMapper) ToEntity(mm *model.Match) *entity.Match {
	if mm == nil {
		return nil
	}

	var updatedAt *time.Time
	if !mm.UpdatedAt.IsZero() {
		t := mm.UpdatedAt
		updatedAt = &t
	}

	return &entity.Match{
		Id:          mm.Id,
		UserAId:     mm.UserAId,
		UserBId:     mm.UserBId,
		Designation: entity.MatchDesignation(mm.Designation),
		CreatedAt:   mm.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *MatchMapper) ToModel(e *entity.Match) *model.Match {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Match{
		Id:          e.Id,
		UserAId:     e.UserAId,
		UserBId:     e.UserBId,
		Designation: string(e.Designation),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *MatchMapper) ToEntities(matches []*model.Match) []*entity.Match {
	entities := make([]*entity.Match, len(matches))
	for i, mm := range matches {
		entities[i] = m.ToEntity(mm)
	}
	return entities
}

func (m *MatchMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:        msg.Id,
		MatchId:   msg.MatchId,
		SenderId:  msg.SenderId,
		Text:      msg.Text,
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *MatchMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:        msg.Id,
		MatchId:   msg.MatchId,
		SenderId:  msg.SenderId,
		Text:      msg.Text,
		IsRead:    msg.IsRead,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *MatchMapper) MessagesToEntities(msgs []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}

func (m *MatchMapper) SectionResponseToEntity(r *model.SectionResponse) *entity.SectionResponse {
	if r == nil {
		return nil
	}
	return &entity.SectionResponse{
		Id:         r.Id,
		FromUserId: r.FromUserId,
		ToUserId:   r.ToUserId,
		Section:    r.Section,
		Text:       r.Text,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *MatchMapper) SectionResponseToModel(r *entity.SectionResponse) *model.SectionResponse {
	if r == nil {
		return nil
	}
	return &model.SectionResponse{
		Id:         r.Id,
		FromUserId: r.FromUserId,
		ToUserId:   r.ToUserId,
		Section:    r.Section,
		Text:       r.Text,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *MatchMapper) PassToEntity(p *model.Pass) *entity.Pass {
	if p == nil {
		return nil
	}
	return &entity.Pass{
		Id:        p.Id,
		UserId:    p.UserId,
		PassedId:  p.PassedId,
		CreatedAt: p.CreatedAt,
	}
}

func (m *MatchMapper) PassToModel(p *entity.Pass) *model.Pass {
	if p == nil {
		return nil
	}
	return &model.Pass{
		Id:        p.Id,
		UserId:    p.UserId,
		PassedId:  p.PassedId,
		CreatedAt: p.CreatedAt,
	}
}
