package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tram "github.com/iwtcode/tramGcode"
	"github.com/iwtcode/tramGcode/models"
	"github.com/joho/godotenv"
)

// runStep выполняет один шаг генерации и останавливает программу при ошибке.
func runStep(name string, fn func() error) {
	log.Printf("--- Запуск шага: %s ---", name)
	if err := fn(); err != nil {
		log.Fatalf("Ошибка выполнения на шаге %s: %v", name, err)
	}
	log.Printf("--- Шаг %s выполнен успешно ---", name)
}

func main() {
	outDir := flag.String("out", "matrix", "output directory")
	tip := flag.Float64("tip", 50, "indicator tip distance in mm")
	probe := flag.Float64("probe", 10, "probe height in mm")
	seconds := flag.Int("time", 30, "dwell time per point in seconds")
	temp := flag.Int("temp", 60, "bed temperature for heated variants")
	flag.Parse()

	// 1) Загрузка конфигурации
	if err := godotenv.Load("./.env"); err != nil {
		log.Printf("Warning: Could not load .env file. Using default values or environment variables: %v", err)
	}
	cfg := tram.Load()

	// 2) Инициализация клиента
	client, err := tram.New(cfg)
	if err != nil {
		log.Fatalf("client init error: %v", err)
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("failed to create %s: %v", *outDir, err)
	}

	// 3) Все сочетания модели, количества раундов, нагрева и звука
	temps := []models.TemperatureMode{models.AmbientTemperature{}, models.CustomTemperature{Celsius: *temp}}
	sounds := []models.SoundPreference{models.SoundOff, models.SoundOn}
	ctx := context.Background()
	count := 0

	for _, printer := range models.Printers() {
		for rounds := tram.MinMeasureCount; rounds <= tram.MaxMeasureCount; rounds++ {
			for _, t := range temps {
				for _, s := range sounds {
					params := models.Params{
						Printer:      printer,
						Temperature:  t,
						MeasureCount: rounds,
						Times:        models.UniformTime{Seconds: *seconds},
						Probe:        models.ProbeParameters{TipDistance: *tip, ProbeHeight: *probe},
						Sound:        s,
					}
					name := fmt.Sprintf("%s/%d/%s/%s", printer, rounds, t.Label(), s.Label())
					runStep(name, func() error {
						result, err := client.Generate(ctx, params)
						if err != nil {
							return err
						}
						path := filepath.Join(*outDir, tram.Filename(*result, true))
						if err := os.WriteFile(path, []byte(result.GCode), 0644); err != nil {
							return fmt.Errorf("не удалось записать G-код в файл %s: %w", path, err)
						}
						count++
						return nil
					})
				}
			}
		}
	}

	log.Printf("Сгенерировано файлов: %d", count)
}
