package export

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gophb/internal/model"
	"github.com/alexiusacademia/gophb/internal/validate"
)

// Job is one writer invocation.
type Job struct {
	Filename   string   `yaml:"filename" validate:"required"`
	SaveFolder string   `yaml:"save_folder" validate:"required"`
	ModelFile  string   `yaml:"model_file" validate:"required"`
	Settings   Settings `yaml:"settings"`
}

// OutputPath is the XML file the writer is expected to produce.
func (j Job) OutputPath() string {
	name := strings.TrimSuffix(j.Filename, filepath.Ext(j.Filename))
	return filepath.Join(j.SaveFolder, name+".xml")
}

// Args are the writer arguments: filename, save folder, model file, then
// the settings.
func (j Job) Args() []string {
	name := strings.TrimSuffix(j.Filename, filepath.Ext(j.Filename)) + ".xml"
	return append([]string{name, j.SaveFolder, j.ModelFile}, j.Settings.Args()...)
}

func (j Job) Validate() error {
	if err := validate.Struct(j); err != nil {
		return fmt.Errorf("%w: %w", ErrSettings, err)
	}
	return j.Settings.Validate()
}

// Runner invokes the writer executable. Prefix arguments (a script path
// for an interpreter, for example) go before the job arguments.
type Runner struct {
	Executable string
	Prefix     []string
	Timeout    time.Duration
	Log        *zap.Logger
}

// Result holds what the writer printed.
type Result struct {
	OutputPath string
	Stdout     string
	Stderr     string
}

// Run validates the job, creates the save folder and runs the writer. A
// non-zero exit is returned as an error carrying the writer's stderr.
func (r Runner) Run(ctx context.Context, job Job) (*Result, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	if r.Executable == "" {
		return nil, fmt.Errorf("%w: no writer executable configured", ErrSettings)
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(job.SaveFolder, 0o755); err != nil {
		return nil, fmt.Errorf("create save folder: %w", err)
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	args := append(append([]string(nil), r.Prefix...), job.Args()...)
	cmd := exec.CommandContext(ctx, r.Executable, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Info("running xml writer", zap.String("executable", r.Executable), zap.Strings("args", args))
	start := time.Now()
	err := cmd.Run()
	res := &Result{OutputPath: job.OutputPath(), Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		log.Error("xml writer failed", zap.Error(err), zap.String("stderr", res.Stderr))
		return res, fmt.Errorf("run %s: %w: %s", r.Executable, err, strings.TrimSpace(res.Stderr))
	}
	log.Info("xml writer finished", zap.String("output", res.OutputPath), zap.Duration("elapsed", time.Since(start)))
	return res, nil
}

// WriteModel saves the model as the JSON input file of a job.
func WriteModel(m *model.Model, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create model folder: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create model file: %w", err)
	}
	if err := m.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("write model file: %w", err)
	}
	return f.Close()
}
