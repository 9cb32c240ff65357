// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "SpellingTrainer"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultLogLevel       = "info"
	DefaultAuthEnabled    = true
	DefaultMailerType     = "log"
	DefaultJWTIssuer      = "SpellingTrainer"
	DefaultJWTAudience    = "SpellingTrainerUsers"
	DefaultAccessTokenTTL = 60 * time.Minute
)
