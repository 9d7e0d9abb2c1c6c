package app

import (
	"database/sql"
	"fmt"

	"github.com/ferdiebergado/rehistro/internal/config"
	"github.com/ferdiebergado/rehistro/internal/notify"
	"github.com/ferdiebergado/rehistro/internal/platform/db"
	"github.com/ferdiebergado/rehistro/internal/platform/email"
	"github.com/ferdiebergado/rehistro/internal/platform/hash"
	"github.com/ferdiebergado/rehistro/internal/platform/router"
	"github.com/ferdiebergado/rehistro/internal/platform/validation"
)

type Provider struct {
	DB         *sql.DB
	Mailer     email.Mailer
	Dispatcher *notify.EmailDispatcher
	Validator  validation.Validator
	Hasher     hash.Hasher
	Router     router.Router
	TxMgr      db.TxManager
}

func newProvider(cfg *config.Config, dbConn *sql.DB) (*Provider, error) {
	smtpCfg, err := email.NewSMTPConfig()
	if err != nil {
		return nil, fmt.Errorf("new smtp config: %w", err)
	}

	mailer := email.NewSMTPMailer(smtpCfg, cfg.Email.Sender)
	dispatcher := notify.NewEmailDispatcher(mailer, cfg.Notify, cfg.Email.CodeTTL.Duration)
	hasher := hash.NewBcryptHasher(cfg.Bcrypt.Cost)
	httpRouter := router.NewGoexpressRouter()
	validator := validation.NewGoPlaygroundValidator()
	txMgr := db.NewSQLTxManager(dbConn)

	provider := &Provider{
		DB:         dbConn,
		Mailer:     mailer,
		Dispatcher: dispatcher,
		Hasher:     hasher,
		Router:     httpRouter,
		Validator:  validator,
		TxMgr:      txMgr,
	}

	return provider, nil
}
