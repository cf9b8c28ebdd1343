package cmd

import (
	"go.uber.org/zap"

	"jordan.com/BeerStore/configs"
	"jordan.com/BeerStore/pkg/model"
	"jordan.com/BeerStore/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".BeerStore.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(_ *Context) error {
	logger := newLogger(true)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	// also creates idx_beer_name_type, the unique guard behind BeerService.Register
	err = repo.DB.AutoMigrate(&model.Beer{})
	if err != nil {
		logger.Error("migration failed", zap.Error(err))

		return err
	}

	logger.Info("migration complete")

	return nil
}
