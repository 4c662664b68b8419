package main

import (
	"log"

	"Event_Showcase/internal/config"
	"Event_Showcase/internal/pkg"
	"Event_Showcase/internal/repository/redis"
	"Event_Showcase/internal/router"
)

func main() {
	cfg := config.Load()

	// 连接redis
	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}
	defer redis.Close()

	// Kafka 可选，不配 brokers 就不发事件
	var producer *pkg.KafkaProducer
	if len(cfg.KafkaBrokers) > 0 {
		var err error
		producer, err = pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			panic(err)
		}
		defer producer.Close()
	}

	// Gin
	r := router.InitRouter(cfg, producer)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
