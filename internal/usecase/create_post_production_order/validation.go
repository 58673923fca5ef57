package create_post_production_order

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// allowedStemExtensions форматы стемов без потерь
var allowedStemExtensions = map[string]struct{}{
	".wav":  {},
	".aiff": {},
}

// validateRequest валидирует форму заказа; все ошибки оборачивают ErrValidation
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrValidation)
	}

	projectName := strings.TrimSpace(req.ProjectName)
	if projectName == "" {
		return fmt.Errorf("%w: project name is required", ErrValidation)
	}
	if len(projectName) > domain.MaxProjectNameLength {
		return fmt.Errorf("%w: project name is too long", ErrValidation)
	}

	if strings.TrimSpace(req.Genre) == "" {
		return fmt.Errorf("%w: genre is required", ErrValidation)
	}

	if strings.TrimSpace(req.TierID) == "" {
		return fmt.Errorf("%w: tier is required", ErrValidation)
	}

	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long", ErrValidation)
	}

	// Проверяем стемы
	if len(req.Stems) == 0 {
		return fmt.Errorf("%w: at least one stem file is required", ErrValidation)
	}
	for _, stem := range req.Stems {
		if err := validateStem(stem); err != nil {
			return err
		}
	}

	return nil
}

// validateStem проверяет расширение файла стема без учета регистра
func validateStem(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: stem file name is empty", ErrValidation)
	}

	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := allowedStemExtensions[ext]; !ok {
		return fmt.Errorf("%w: stem %q must be a WAV or AIFF file", ErrValidation, name)
	}

	return nil
}
