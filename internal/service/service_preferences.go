package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/validators"
	"github.com/MKhiriev/go-aura/models"
)

type preferencesService struct {
	state     StateService
	validator validators.Validator
	logger    *logger.Logger
}

func NewPreferencesService(state StateService, validator validators.Validator, logger *logger.Logger) PreferencesService {
	return &preferencesService{
		state:     state,
		validator: validator,
		logger:    logger,
	}
}

// Update applies every non-nil field of update. The volume is clamped to
// the supported range.
func (p *preferencesService) Update(ctx context.Context, update models.PreferencesUpdate) (models.ApplicationState, error) {
	if err := p.validator.Validate(ctx, update); err != nil {
		return models.ApplicationState{}, err
	}

	var result models.ApplicationState
	err := p.state.Update(ctx, func(doc *models.ApplicationState) error {
		applyPreferences(doc, update)
		result = doc.Clone()
		return nil
	})
	if err != nil {
		return models.ApplicationState{}, err
	}

	return result, nil
}

func applyPreferences(doc *models.ApplicationState, update models.PreferencesUpdate) {
	if update.Name != nil {
		doc.Name = NormalizeName(*update.Name)
	}
	if update.SoundEnabled != nil {
		doc.SoundEnabled = *update.SoundEnabled
	}
	if update.Haptics != nil {
		doc.Haptics = *update.Haptics
	}
	if update.SFX != nil {
		doc.SFX = *update.SFX
	}
	if update.Theme != nil {
		doc.Theme = strings.TrimSpace(*update.Theme)
	}
	if update.AudioEnv != nil {
		doc.Audio.Env = *update.AudioEnv
	}
	if update.AudioVolume != nil {
		doc.Audio.Volume = models.ClampVolume(*update.AudioVolume)
	}
	if update.AudioOn != nil {
		doc.Audio.On = *update.AudioOn
	}
}
