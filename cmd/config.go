package cmd

// Config carries everything the process reads from the environment: the HTTP
// port, the PostgreSQL connection, the Kafka order stream, the Redis geocode
// cache and the Nominatim endpoint.
type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	RedisAddr              string
	RedisDB                int
	NominatimBaseURL       string
	NominatimUserAgent     string
	GeoRegionHint          string
}
