package ops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"agnoctl/internal/config"
	"agnoctl/internal/ollama"
)

const deployGuideTmpl = `# Deployment & Recovery Guide - Agno Stack

**Generated:** %s
**Author:** Auto-generated via agnoctl docs deploy-guide

---

## 1. Stack Components

- API -- REST runtime on port 8000
- Postgres + pgvector -- vector DB on port 5432
- Ollama -- local LLM inference engine on port 11434

---

## 2. Deployment Steps

    git clone <your-repo-url> agno-stack
    cd agno-stack
    agnoctl up --wait
    agnoctl db init
    agnoctl models sync

---

## 3. Service Health Checks

    agnoctl status
    agnoctl validate

Expected tables:

- agno_sessions
- agno_memories
- agno_metrics
- agno_knowledge
- agno_evals

---

## 4. Restart or Reset

    agnoctl restart

To reinit the DB (non-destructive):

    agnoctl db init

---

## 5. Persistent Assets

| Resource    | Path        |
| ----------- | ----------- |
| DB Volume   | pgvolume    |
| Model Store | ollama_data/ |
| Ports       | 8000 (API), 5432 (DB), 11434 (Ollama) |

---

## 6. Shortcuts

    agnoctl up | down | restart
    agnoctl db init | db shell
    agnoctl models sync | models list
    agnoctl status
    agnoctl docs deploy-guide | docs baseline
`

const baselineTmpl = `# BASELINE_STATUS
**Generated:** %s

## System Overview
| Component | Value |
|-----------|-------|
| **Ollama models** | %s |
| **GPU** | %s |
| **Git Tag** | %s |

## Service Ports
| Service  | Port |
|----------|------|
| API      | 8000 |
| Ollama   | 11434 |
| Postgres | 5432 |

---
Baseline snapshot recorded for the Agno stack.
`

// writeDoc writes content into docsDir/name, creating the directory.
func writeDoc(docsDir, name, content string) (string, error) {
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(docsDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// genDeployGuide regenerates docs/DEPLOY_GUIDE.md.
func genDeployGuide(docsDir string) error {
	now := time.Now().Format("2006-01-02 15:04:05")
	path, err := writeDoc(docsDir, "DEPLOY_GUIDE.md", fmt.Sprintf(deployGuideTmpl, now))
	if err != nil {
		return err
	}
	info("[docs] deployment guide generated at %s", path)
	return nil
}

// genBaseline regenerates docs/BASELINE_STATUS.md from a live snapshot.
// Unavailable probes degrade to "N/A" rather than failing the command.
func genBaseline(ctx context.Context, cfg config.Config, docsDir string) error {
	now := time.Now().Format("2006-01-02 15:04:05")

	models := "N/A"
	if tags, err := ollama.New(cfg.OllamaHost).Tags(ctx); err == nil {
		names := make([]string, 0, len(tags))
		for _, m := range tags {
			names = append(names, m.Name)
		}
		if len(names) > 0 {
			models = strings.Join(names, ", ")
		} else {
			models = "none"
		}
	}

	gpu := gpuSummary(ctx)

	tag := "untagged"
	if out, err := runCmdCapture(ctx, "git", "describe", "--tags", "--abbrev=0"); err == nil && out != "" {
		tag = out
	}

	path, err := writeDoc(docsDir, "BASELINE_STATUS.md", fmt.Sprintf(baselineTmpl, now, models, gpu, tag))
	if err != nil {
		return err
	}
	info("[docs] baseline status generated at %s", path)
	return nil
}
