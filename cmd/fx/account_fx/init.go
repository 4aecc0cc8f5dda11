package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"gymfit/internal/config"
	"gymfit/internal/repositories"
	"gymfit/internal/services"
	mem "gymfit/pkg/memcache"
	"gymfit/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideJWTManager)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	jwtManager *utils.JWTManager,
	mailService services.IMailService,
	tokens mem.ResetTokenStore,
	cfg *config.Config,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, jwtManager, mailService, tokens, cfg.JWTTTL)
}
