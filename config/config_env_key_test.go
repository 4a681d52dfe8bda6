package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"smtp": map[string]any{
			"senderName": "Notifier",
			"host":       "smtp.example.com",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"firebase": map[string]any{
			"credentialsPath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SMTP_SENDERNAME", want: "smtp.senderName"},
		{envKey: "SMTP_HOST", want: "smtp.host"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsDispatchAndVerify(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Dispatch.PushParallelism != defaultPushParallelism {
		t.Fatalf("PushParallelism = %d, want %d", cfg.Dispatch.PushParallelism, defaultPushParallelism)
	}
	if cfg.Dispatch.ListLimit != defaultListLimit {
		t.Fatalf("ListLimit = %d, want %d", cfg.Dispatch.ListLimit, defaultListLimit)
	}
	if cfg.Verify.Delay != defaultVerifyDelay {
		t.Fatalf("Verify.Delay = %s, want %s", cfg.Verify.Delay, defaultVerifyDelay)
	}
	if cfg.Verify.RetryDelay != defaultVerifyRetry {
		t.Fatalf("Verify.RetryDelay = %s, want %s", cfg.Verify.RetryDelay, defaultVerifyRetry)
	}
}
