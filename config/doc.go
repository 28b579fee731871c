// Package config loads numkit configuration.
//
// Values come from a YAML file, a .env file and the environment, in
// increasing order of precedence. Environment variables carry the NUMKIT_
// prefix and map underscores onto nested keys, so NUMKIT_SOLVER_EPSILON
// sets solver.epsilon and NUMKIT_SOLVER_MAX_ITERATIONS sets
// solver.max_iterations.
//
//	cfg, err := config.Load(config.WithConfigFile("numkit.yml"))
package config
