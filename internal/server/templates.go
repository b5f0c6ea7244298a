package server

import (
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

// listTemplates returns the registered template names, sorted. A name is
// the base of a .json descriptor file in the template directory.
func (s *Server) listTemplates() ([]string, error) {
	entries, err := os.ReadDir(s.templateDir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "read template directory %s", s.templateDir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names, nil
}

// templatePath resolves a registered template name to its descriptor
// path. Names carry no extension and no path separators; anything else
// is rejected before it can escape the template directory.
func (s *Server) templatePath(name string) (string, error) {
	if name == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidOptions, "template is required")
	}
	if err := apperrors.ValidateTemplateName(name); err != nil {
		return "", err
	}

	path := filepath.Join(s.templateDir, name+".json")
	if _, err := os.Stat(path); err != nil {
		return "", apperrors.New(apperrors.ErrCodeTemplateNotFound, "no template named %q", name)
	}
	return path, nil
}
