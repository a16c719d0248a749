package database

import (
	"KMate/config"
	"KMate/models"
	"KMate/pkg/log"
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	gormConf := &gorm.Config{
		// 唯一键、外键冲突转换为 gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
	if conf.Debug() {
		gormConf.Logger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(conf.MySQL.Dsn()), gormConf)
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.L.Fatal("failed to get sql.DB", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(conf.MySQL.MaxOpen)
	sqlDB.SetMaxIdleConns(conf.MySQL.MaxIdle)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.L.Info("connect database success", zap.String("database", conf.MySQL.Database))
	return db
}

// Migrate 根据模型同步表结构
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(models.All()...)
}
