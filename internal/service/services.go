package service

import (
	"time"

	"github.com/MKhiriev/go-aura/internal/config"
	"github.com/MKhiriev/go-aura/internal/crypto"
	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/internal/store"
	"github.com/MKhiriev/go-aura/internal/validators"
	"github.com/MKhiriev/go-aura/models"
)

type Services struct {
	LockService        LockService
	StateService       StateService
	MoodService        MoodService
	JournalService     JournalService
	PreferencesService PreferencesService
	ExportService      ExportService
	AppInfoService     AppInfoService

	// SessionService is only wired for the daemon.
	SessionService SessionService
}

// NewServices wires the daemon services. Session tokens are revoked every
// time the companion leaves the UNLOCKED state.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	services, err := newCoreServices(storages.Records, cfg.App.Version, cfg.App.ExportDir, logger)
	if err != nil {
		return nil, err
	}

	sessionService, err := NewSessionService(cfg.App, logger)
	if err != nil {
		return nil, err
	}
	services.SessionService = sessionService
	services.LockService.OnStateChange(func(state models.LockState) {
		if state != models.LockStateUnlocked {
			sessionService.RevokeAll()
		}
	})

	return services, nil
}

// NewClientServices wires the services used by the terminal client in local
// mode.
func NewClientServices(storages *store.Storages, cfg config.ClientConfig, logger *logger.Logger) (*Services, error) {
	return newCoreServices(storages.Records, cfg.App.Version, cfg.App.ExportDir, logger)
}

func newCoreServices(records store.RecordRepository, version, exportDir string, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(version, logger)
	if err != nil {
		return nil, err
	}

	verifier := crypto.NewPinVerifier()
	validator := validators.NewInputValidator()
	stateStore := NewStateStore(records, crypto.NewKeyDeriver(), crypto.NewCodec(), verifier, logger)

	sess := newSession(time.Now())
	stateService := newStateService(sess, stateStore, logger)

	return &Services{
		LockService:        newLockService(sess, stateStore, verifier, validator, logger),
		StateService:       stateService,
		MoodService:        NewMoodService(stateService, validator, logger),
		JournalService:     NewJournalService(stateService, validator, logger),
		PreferencesService: NewPreferencesService(stateService, validator, logger),
		ExportService:      NewExportService(stateService, exportDir, logger),
		AppInfoService:     appInfoService,
	}, nil
}
