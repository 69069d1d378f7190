package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hyperifyio/goroadmap/internal/roadmap"
)

// Smoke test: an offline run writes a roadmap with default settings.
func TestRealMain_OfflineWritesRoadmap(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.json")
	code := realMain([]string{"-env", "", "-output", out, "-cache.dir", filepath.Join(dir, "cache"), "-days", "3", "Machine", "Learning"}, &bytes.Buffer{})
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var rm roadmap.Roadmap
	if err := json.Unmarshal(b, &rm); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rm.Subject != "Machine Learning" || len(rm.Days) != 3 {
		t.Fatalf("unexpected roadmap %q with %d days", rm.Subject, len(rm.Days))
	}
}

func TestRealMain_InvalidInputExitsTwo(t *testing.T) {
	dir := t.TempDir()
	code := realMain([]string{"-env", "", "-output", filepath.Join(dir, "o.json"), "-subject", "Go", "-days", "0"}, &bytes.Buffer{})
	if code != 2 {
		t.Fatalf("expected exit 2 for zero days, got %d", code)
	}
	if code := realMain([]string{"-no-such-flag"}, &bytes.Buffer{}); code != 2 {
		t.Fatalf("expected exit 2 for bad flag, got %d", code)
	}
}

func TestRealMain_Version(t *testing.T) {
	var buf bytes.Buffer
	if code := realMain([]string{"-version"}, &buf); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.HasPrefix(buf.String(), "goroadmap ") {
		t.Fatalf("unexpected version output %q", buf.String())
	}
}

func TestParseConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "cfg.yaml")
	if err := os.WriteFile(file, []byte("subject: FromFile\ndays: 9\nhours: 3\nlevel: Advanced\ntimeouts:\n  media: 4s\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ROADMAP_DAYS", "11")
	t.Setenv("ROADMAP_HOURS", "")

	cfg, _, err := parseConfig([]string{"-env", "", "-config", file, "-level", "Beginner", "-domains.allow", "youtube.com, vimeo.com"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Subject != "FromFile" {
		t.Fatalf("file should supply subject, got %q", cfg.Subject)
	}
	if cfg.Days != 11 {
		t.Fatalf("env should beat file for days, got %d", cfg.Days)
	}
	if cfg.StudyHours != 3 || cfg.MediaTimeout != 4*time.Second {
		t.Fatalf("file values lost: hours=%v media=%v", cfg.StudyHours, cfg.MediaTimeout)
	}
	if cfg.SkillLevel != "Beginner" {
		t.Fatalf("flag should beat file for level, got %q", cfg.SkillLevel)
	}
	if fmt.Sprint(cfg.DomainAllowlist) != "[youtube.com vimeo.com]" {
		t.Fatalf("unexpected allowlist %v", cfg.DomainAllowlist)
	}

	cfg, _, err = parseConfig([]string{"-env", "", "-config", file, "-days", "2"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Days != 2 {
		t.Fatalf("flag should beat env for days, got %d", cfg.Days)
	}
}

func TestParseConfig_DotenvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("ROADMAP_SUBJECT=Guitar\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ROADMAP_SUBJECT", "")
	cfg, opts, err := parseConfig([]string{"-env", envPath})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Subject != "Guitar" || len(opts.envFiles) != 1 {
		t.Fatalf("dotenv not applied: %q %v", cfg.Subject, opts.envFiles)
	}
}

func TestExitCode(t *testing.T) {
	invalid := fmt.Errorf("init app: %w", &roadmap.InvalidInputError{Field: "days", Reason: "must be positive"})
	if exitCode(invalid) != 2 {
		t.Fatal("invalid input should exit 2")
	}
	if exitCode(errors.New("disk full")) != 1 {
		t.Fatal("other errors should exit 1")
	}
	if exitCode(nil) != 0 {
		t.Fatal("nil should exit 0")
	}
}

func TestRealMain_CatalogCourseAndProgressReport(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "course.json")
	code := realMain([]string{"-env", "", "-output", out, "-cache.dir", filepath.Join(dir, "cache"),
		"-category", "certifications", "-subcategory", "aws", "-topics", "developer,sysops", "-days", "4"}, &bytes.Buffer{})
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var rm roadmap.Roadmap
	if err := json.Unmarshal(b, &rm); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rm.Course == nil || rm.Course.Name != "Amazon Web Services Certification - AWS Developer, AWS SysOps Administrator" {
		t.Fatalf("unexpected course %+v", rm.Course)
	}

	var report bytes.Buffer
	if code := realMain([]string{"-report.from", out}, &report); code != 0 {
		t.Fatalf("report exit code %d", code)
	}
	for _, want := range []string{"Learning Progress Report", "Course: Amazon Web Services Certification", "Days Completed: 0/4"} {
		if !strings.Contains(report.String(), want) {
			t.Fatalf("report missing %q:\n%s", want, report.String())
		}
	}
	if code := realMain([]string{"-report.from", filepath.Join(dir, "missing.json")}, &bytes.Buffer{}); code != 1 {
		t.Fatalf("expected exit 1 for missing roadmap, got %d", code)
	}
}

func TestRealMain_ListsCatalog(t *testing.T) {
	var buf bytes.Buffer
	if code := realMain([]string{"-catalog"}, &buf); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(buf.String(), "competitive") || !strings.Contains(buf.String(), "jee") {
		t.Fatalf("catalog listing incomplete: %q", buf.String())
	}
}

func TestRealMain_RejectsBadCourseAndHugeHours(t *testing.T) {
	dir := t.TempDir()
	base := []string{"-env", "", "-output", filepath.Join(dir, "o.json"), "-cache.dir", filepath.Join(dir, "cache")}
	for _, extra := range [][]string{
		{"-category", "programming", "-subcategory", "cobol"},
		{"-subject", "Go", "-hours", "1e15"},
		{"-subject", "Go", "-days", "1000"},
	} {
		if code := realMain(append(append([]string{}, base...), extra...), &bytes.Buffer{}); code != 2 {
			t.Fatalf("%v: expected exit 2, got %d", extra, code)
		}
	}
}
