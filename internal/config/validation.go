package config

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"sort"
)

func Validate(conf *Application, logFunc func(format string, v ...interface{})) error {
	errs := url.Values{}
	validateGatewayConfiguration(errs, conf.Gateway)
	validateLoggingConfiguration(errs, conf.Logging)

	if len(errs) > 0 {
		logValidationErrorDetails(errs, logFunc)
		return errors.New("configuration values failed to validate, bailing out")
	}

	return nil
}

const downstreamPattern = "^https?://.*[^/]$"

func validateGatewayConfiguration(errs url.Values, c GatewayConfig) {
	if violatesPattern(downstreamPattern, c.BaseUrl) {
		errs.Add("gateway.base_url", "base url must start with http:// or https:// and may not end in a /")
	}
	checkLength(&errs, 1, 256, "gateway.login", c.Login)
	checkLength(&errs, 1, 256, "gateway.password", c.Password)
	checkLength(&errs, 0, 256, "gateway.user_agent", c.UserAgent)
}

var allowedSeverities = []string{"DEBUG", "INFO", "WARN", "ERROR"}

func validateLoggingConfiguration(errs url.Values, c LoggingConfig) {
	if notInAllowedValues(allowedSeverities[:], c.Severity) {
		errs.Add("logging.severity", "must be one of DEBUG, INFO, WARN, ERROR")
	}
}

func violatesPattern(pattern string, value string) bool {
	matched, err := regexp.MatchString(pattern, value)
	if err != nil {
		return true
	}
	return !matched
}

func checkLength(errs *url.Values, min int, max int, key string, value string) {
	if len(value) < min || len(value) > max {
		errs.Add(key, fmt.Sprintf("%s field must be at least %d and at most %d characters long", key, min, max))
	}
}

func notInAllowedValues[T comparable](allowed []T, value T) bool {
	return !sliceContains(allowed, value)
}

func sliceContains[T comparable](s []T, e T) bool {
	for _, v := range s {
		if v == e {
			return true
		}
	}
	return false
}

func logValidationErrorDetails(errs url.Values, logFunc func(format string, v ...interface{})) {
	var keys []string
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, k := range keys {
		logFunc("configuration error: %s: %s", k, errs[k][0])
	}
}
