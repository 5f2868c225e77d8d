package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testResumeText = `JANE DOE

SUMMARY
Software engineer with five years of experience building web services.

SKILLS
Python | Go | PostgreSQL

EXPERIENCE
- Built backend services for a payments platform.
- Led a migration to cloud infrastructure.
`

const testJobText = `We are looking for engineers with Docker and Kubernetes experience.
Docker containers and Kubernetes clusters are core to our stack.`

func writeTestInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOptimizeCommand_MissingResume(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "optimize", "--job", "job.txt")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "a resume file is required")
}

func TestOptimizeCommand_MissingJob(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := writeTestInput(t, tmpDir, "resume.txt", testResumeText)

	cmd := exec.Command(binaryPath, "optimize", "--resume", resumeFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "a job description is required")
}

func TestOptimizeCommand_FileToFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := writeTestInput(t, tmpDir, "resume.txt", testResumeText)
	jobFile := writeTestInput(t, tmpDir, "job.txt", testJobText)
	outFile := filepath.Join(tmpDir, "out.txt")

	cmd := exec.Command(binaryPath, "optimize",
		"--resume", resumeFile,
		"--job", jobFile,
		"--output", outFile,
		"--density-limit", "0.5")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	result, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(result), "Docker")
	assert.Contains(t, string(output), "Inserted")
}

func TestOptimizeCommand_ConfigFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := writeTestInput(t, tmpDir, "resume.txt", testResumeText)
	jobFile := writeTestInput(t, tmpDir, "job.txt", testJobText)
	outFile := filepath.Join(tmpDir, "out.txt")

	configFile := writeTestInput(t, tmpDir, "config.json",
		`{"resume": "`+resumeFile+`", "job": "`+jobFile+`", "density_limit": 0.5}`)

	cmd := exec.Command(binaryPath, "optimize", "--config", configFile, "--output", outFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	result, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(result), "Docker")
}

func TestLoadMergedConfig_FlagsWinOverConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	resumeFile := writeTestInput(t, tmpDir, "resume.txt", testResumeText)
	jobFile := writeTestInput(t, tmpDir, "job.txt", testJobText)
	configFile := writeTestInput(t, tmpDir, "config.json",
		`{"resume": "`+resumeFile+`", "job": "`+jobFile+`", "density_limit": 0.2, "use_browser": true}`)

	flags := optimizeCommand.Flags()
	require.NoError(t, flags.Set("config", configFile))
	require.NoError(t, flags.Set("density-limit", "0.4"))
	t.Cleanup(func() {
		optConfigPath = ""
		optDensityLimit = 0
	})

	cfg, err := loadMergedConfig(optimizeCommand)
	require.NoError(t, err)

	// File fills the unset fields, explicit flags win over the file, and a
	// true bool in the file applies when its flag was not given.
	assert.Equal(t, resumeFile, cfg.Resume)
	assert.Equal(t, jobFile, cfg.Job)
	assert.Equal(t, 0.4, cfg.DensityLimit)
	assert.True(t, cfg.UseBrowser)
}

func TestOptimizeCommand_JobAndURLConflict(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tmpDir := t.TempDir()
	resumeFile := writeTestInput(t, tmpDir, "resume.txt", testResumeText)
	jobFile := writeTestInput(t, tmpDir, "job.txt", testJobText)

	cmd := exec.Command(binaryPath, "optimize",
		"--resume", resumeFile,
		"--job", jobFile,
		"--job-url", "https://example.com/jobs/1")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}
