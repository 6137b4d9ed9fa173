package main

import (
	"flag"

	"wavetags.link/configs"
	"wavetags.link/configs/configsdatabase"
	"wavetags.link/configs/configslog"
	"wavetags.link/database"
)

// Migrasyon ve seed işlemleri uygulamadan ayrı, elle çalıştırılır:
//
//	go run ./database/cmd -migrate -seed
func main() {
	migrate := flag.Bool("migrate", false, "Veritabanı migrasyonlarını çalıştırır")
	seed := flag.Bool("seed", false, "Başlangıç verilerini yükler")
	flag.Parse()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	configs.LoadEnv()
	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	database.Initialize(configsdatabase.GetDB(), *migrate, *seed)
}
