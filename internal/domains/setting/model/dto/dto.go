package dto

import (
	"github.com/yamanfurkan353-eng/lumina/internal/domains/setting/model"
	gModel "github.com/yamanfurkan353-eng/lumina/shared/model"
	"github.com/yamanfurkan353-eng/lumina/shared/timezone"
)

type UpsertSettingRequest struct {
	Value string `json:"value" validate:"required,max=500"`
}

func (u *UpsertSettingRequest) ToModel(key, user string) model.Setting {
	return model.Setting{
		Key:   key,
		Value: u.Value,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (r *SettingResponse) FromModel(model model.Setting) {
	r.Key = model.Key
	r.Value = model.Value
}

type GetSettingsResponse struct {
	Settings map[string]string `json:"settings"`
}

func (r *GetSettingsResponse) FromModels(models []model.Setting) {
	r.Settings = make(map[string]string, len(models))
	for _, mod := range models {
		r.Settings[mod.Key] = mod.Value
	}
}
