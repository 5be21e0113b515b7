package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oslerai/preceptor/internal/config"
	"github.com/oslerai/preceptor/internal/curriculum"
	"github.com/oslerai/preceptor/internal/llm"
	"github.com/oslerai/preceptor/internal/logging"
	"github.com/oslerai/preceptor/internal/session"
	"github.com/oslerai/preceptor/internal/store"
	"github.com/oslerai/preceptor/internal/tui"
)

// runApp wires config, logging, the store and the engine, then launches
// the chat TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogMode, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer log.Sync()

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// Without a provider the engine runs entirely on the deterministic
	// fallbacks, which is degraded but usable.
	var provider llm.Provider
	if llmCfg, ok := llm.DiscoverConfig(); ok {
		provider, err = llm.NewProvider(ctx, llmCfg, st, log)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Running with heuristic grading only.")
			provider = nil
		}
	} else {
		fmt.Fprintln(os.Stderr, "No API key found; running with heuristic grading only.")
	}

	engine := session.NewEngine(provider, log)

	resume, _ := cmd.Flags().GetBool("resume")
	var sess *session.Session
	if resume {
		sess, err = st.LoadLatestSession(ctx)
		if err != nil {
			return fmt.Errorf("resume session: %w", err)
		}
		if sess != nil && sess.Complete() {
			sess = nil
		}
	}
	if sess == nil {
		topic, _ := cmd.Flags().GetString("topic")
		if topic == "" {
			topic = cfg.Topic
		}
		if topic == "" {
			return fmt.Errorf("no topic given: pass --topic or set one in %s", cfgPath)
		}
		subtopics := curriculum.NewGenerator(provider, curriculum.DefaultConfig()).Generate(ctx, topic)
		sess = session.New(topic, subtopics)
	}

	return tui.Run(engine, sess, st)
}
