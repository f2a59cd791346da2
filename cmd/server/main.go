/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package main is the entry point for starting the flow composer server.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/asgardeo/flowcomposer/internal/system/cache"
	"github.com/asgardeo/flowcomposer/internal/system/config"
	"github.com/asgardeo/flowcomposer/internal/system/log"
)

func main() {
	logger := log.GetLogger()

	composerHome := getComposerHome(logger)

	cfg := initConfigurations(logger, composerHome)
	if cfg == nil {
		logger.Fatal("Failed to initialize configurations")
	}

	mux := http.NewServeMux()
	registerServices(mux)

	if cfg.Server.HTTPOnly {
		logger.Info("TLS is not enabled, starting server without TLS")
		startHTTPServer(logger, cfg, mux)
	} else {
		startTLSServer(logger, cfg, mux, composerHome)
	}
}

// getComposerHome retrieves and returns the composer home directory.
func getComposerHome(logger *log.Logger) string {
	composerHome := ""
	composerHomeFlag := flag.String("composerHome", "", "Path to the composer home directory")
	flag.Parse()

	if *composerHomeFlag != "" {
		logger.Info("Using composerHome from command line argument",
			log.String("composerHome", *composerHomeFlag))
		composerHome = *composerHomeFlag
	} else {
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			logger.Fatal("Failed to get current working directory", log.Error(dirErr))
		}
		composerHome = dir
	}

	return composerHome
}

// initConfigurations initializes the server configurations.
func initConfigurations(logger *log.Logger, composerHome string) *config.Config {
	configFilePath := path.Join(composerHome, "repository/conf/deployment.yaml")
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		logger.Fatal("Failed to load configurations", log.Error(err))
	}

	if err := config.InitializeComposerRuntime(composerHome, cfg); err != nil {
		logger.Fatal("Failed to initialize composer runtime", log.Error(err))
	}

	cache.GetCacheManager().Init()

	return cfg
}

// startTLSServer starts the HTTPS server with TLS configuration.
func startTLSServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux, composerHome string) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	certFile := path.Join(composerHome, cfg.Security.CertFile)
	keyFile := path.Join(composerHome, cfg.Security.KeyFile)

	logger.Info("Flow composer server started (HTTPS)...", log.String("address", serverAddr))

	if err := server.ListenAndServeTLS(certFile, keyFile); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// startHTTPServer starts the HTTP server without TLS.
func startHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) {
	server, serverAddr := createHTTPServer(logger, cfg, mux)

	logger.Info("Flow composer server started (HTTP)...", log.String("address", serverAddr))

	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("Failed to serve HTTP requests", log.Error(err))
	}
}

// createHTTPServer creates and configures an HTTP server with common settings.
func createHTTPServer(logger *log.Logger, cfg *config.Config, mux *http.ServeMux) (*http.Server, string) {
	wrappedMux := log.AccessLogHandler(logger, mux)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)

	server := &http.Server{
		Addr:              serverAddr,
		Handler:           wrappedMux,
		ReadHeaderTimeout: 10 * time.Second, // Mitigate Slowloris attacks
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return server, serverAddr
}
