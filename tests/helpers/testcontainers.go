// Helper for running integration targets with testcontainers. Used by
// the integration tests and by the standalone cmd/testcontainers
// executable. Expects environment variables to be loaded from .env files.

package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

type TestContainers struct {
	Network          *testcontainers.DockerNetwork
	DBContainer      testcontainers.Container
	AppContainer     testcontainers.Container
	BuilderContainer testcontainers.Container
	AppBaseURL       string
	DBHostPort       string
}

func (tc *TestContainers) Terminate(t *testing.T) {
	ctx := context.Background()
	if tc.AppContainer != nil {
		if err := tc.AppContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate app container: %v", err)
		}
	}
	if tc.BuilderContainer != nil {
		if err := tc.BuilderContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate builder container: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate database container: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// CreateAllTestContainers starts the database container and the
// ffetrack service container on a shared network. Schema creation is
// left to the service's auto-migration on startup.
func CreateAllTestContainers(t *testing.T) (*TestContainers, error) {
	ctx := context.Background()
	testContainers := &TestContainers{}

	debugContainer := os.Getenv("DEBUG_CONTAINER")

	nw, err := network.New(ctx)
	if err != nil {
		exitWithError(t, err, "Failed to create network")
	}
	testContainers.Network = nw
	networkName := nw.Name

	// Database container
	dbType := os.Getenv("DB_TYPE")
	dbNetworkName := os.Getenv("DB_HOST")
	tcpDbPort, err := nat.NewPort("tcp", os.Getenv("DB_PORT"))
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to create DB port")
	}
	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{string(tcpDbPort)},
			Env:          getDBInitEnvMap(dbType),
			WaitingFor:   wait.ForListeningPort(tcpDbPort).WithStartupTimeout(60 * time.Second),
			Networks:     []string{networkName},
			NetworkAliases: map[string][]string{
				networkName: {dbNetworkName},
			},
		},
		Started: true,
	})
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to start database")
	}
	testContainers.DBContainer = dbContainer

	dbHost, _ := dbContainer.Host(ctx)
	dbPort, _ := dbContainer.MappedPort(ctx, tcpDbPort)
	testContainers.DBHostPort = fmt.Sprintf("%s:%s", dbHost, dbPort.Port())

	if dbType == "mysql" || dbType == "mariadb" {
		if err := performMySqlDBInit(t, testContainers, dbHost, dbPort); err != nil {
			testContainers.Terminate(t)
			exitWithError(t, err, "Failed to initialize database")
		}
	}

	imageName := "ffetrack-test:latest"

	exists, err := imageExists(ctx, imageName)
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to check if image exists")
	}

	appPortNumber := os.Getenv("PORT")
	tcpAppPort, err := nat.NewPort("tcp", appPortNumber)
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to create app port")
	}

	appExposedPorts := []string{string(tcpAppPort)}
	if debugContainer == "true" {
		appExposedPorts = append(appExposedPorts, "2345/tcp")
	}

	hostConfigModifier := func(hostConfig *container.HostConfig) {
		if debugContainer == "true" {
			hostConfig.PortBindings = nat.PortMap{
				"2345/tcp": []nat.PortBinding{
					{HostIP: "127.0.0.1", HostPort: "2345"},
				},
			}
			hostConfig.CapAdd = []string{"SYS_PTRACE"}
			hostConfig.SecurityOpt = []string{"apparmor:unconfined"}
		}
	}

	var waitStrategy wait.Strategy
	waitStrategy = wait.ForHTTP("/metrics").WithPort(tcpAppPort).WithStartupTimeout(30 * time.Second)
	if debugContainer == "true" {
		waitStrategy = wait.ForLog("API server listening at: [::]:2345").WithStartupTimeout(5 * time.Minute)
	}

	appContainerRequest := testcontainers.ContainerRequest{
		ExposedPorts: appExposedPorts,
		Env: map[string]string{
			"DB_TYPE":             dbType,
			"DB_HOST":             dbNetworkName,
			"DB_PORT":             os.Getenv("DB_PORT"),
			"DB_DATABASE":         os.Getenv("DB_DATABASE"),
			"DB_USER":             os.Getenv("DB_USER"),
			"DB_PASSWORD":         os.Getenv("DB_PASSWORD"),
			"DB_CONNECTION_LIMIT": os.Getenv("DB_CONNECTION_LIMIT"),
			"SCRAPER_URL":         os.Getenv("SCRAPER_URL"),
			"PORT":                appPortNumber,
		},
		HostConfigModifier: hostConfigModifier,
		WaitingFor:         waitStrategy,
		Networks:           []string{networkName},
	}

	if debugContainer == "true" {
		appContainerRequest.Entrypoint = []string{
			"/usr/local/bin/dlv",
			"--listen=:2345",
			"--headless=true",
			"--api-version=2",
			"--accept-multiclient",
			"exec",
			"./ffetrack",
		}
	}

	if !exists {
		reaperSessionID := uuid.New().String()

		buildArgs := map[string]*string{
			"RESOURCE_REAPER_SESSION_ID": &reaperSessionID,
		}
		if debugContainer == "true" {
			buildArgs["DEBUG"] = &debugContainer
		}

		buildContext := os.Getenv("TESTCONTAINERS_BUILD_CONTEXT")
		if buildContext == "" {
			buildContext = "../.."
		}

		logMessage(t, "Image %s does not exist, building...", imageName)
		builderContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    buildContext,
					Dockerfile: "Dockerfile",
					Repo:       "ffetrack-test-builder",
					Tag:        "latest",
					BuildArgs:  buildArgs,
					BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
						opts.Target = "builder"
					},
					PrintBuildLog: true,
				},
			},
			Started: false,
		})
		if err != nil {
			testContainers.Terminate(t)
			exitWithError(t, err, "Failed to build ffetrack-test-builder")
		}
		testContainers.BuilderContainer = builderContainer

		imageNameParts := strings.Split(imageName, ":")
		appContainerRequest.FromDockerfile = testcontainers.FromDockerfile{
			Context:    buildContext,
			Dockerfile: "Dockerfile",
			Repo:       imageNameParts[0],
			Tag:        imageNameParts[1],
			KeepImage:  true,
			BuildArgs:  buildArgs,
			BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
				opts.Target = "runtime"
			},
			PrintBuildLog: true,
		}
	} else {
		logMessage(t, "Image %s exists, reusing...", imageName)
		appContainerRequest.Image = imageName
	}

	appContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: appContainerRequest,
		Started:          true,
	})
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to start ffetrack")
	}
	testContainers.AppContainer = appContainer

	appHost, _ := appContainer.Host(ctx)
	appPort, _ := appContainer.MappedPort(ctx, tcpAppPort)
	testContainers.AppBaseURL = fmt.Sprintf("http://%s:%s", appHost, appPort.Port())
	logMessage(t, "BASE_URL=%s", testContainers.AppBaseURL)

	logMessage(t, "FFETrack testcontainer started successfully")
	return testContainers, nil
}

func getDBInitEnvMap(dbType string) map[string]string {
	switch dbType {
	case "postgres":
		return map[string]string{
			"POSTGRES_PASSWORD": os.Getenv("DB_PASSWORD"),
			"POSTGRES_USER":     os.Getenv("DB_USER"),
			"POSTGRES_DB":       os.Getenv("DB_DATABASE"),
		}
	case "mariadb", "mysql":
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": os.Getenv("DB_ROOT_PASSWORD"),
			"MYSQL_DATABASE":      os.Getenv("DB_DATABASE"),
			"MYSQL_USER":          os.Getenv("DB_USER"),
			"MYSQL_PASSWORD":      os.Getenv("DB_PASSWORD"),
		}
	}
	return nil
}

func performMySqlDBInit(t *testing.T, testContainers *TestContainers, dbHost string, dbPort nat.Port) error {
	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/", os.Getenv("DB_ROOT_PASSWORD"), dbHost, dbPort.Port()))
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to connect to MariaDB for setup")
	}
	defer db.Close()

	// Wait for connection to be really ready
	for i := 0; i < 30; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "MariaDB not ready after 30 seconds")
	}

	_, err = db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", os.Getenv("DB_DATABASE")))
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, fmt.Sprintf("Failed to create %s", os.Getenv("DB_DATABASE")))
	}
	_, err = db.Exec(fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD")))
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, fmt.Sprintf("Failed to create user %s", os.Getenv("DB_USER")))
	}
	_, err = db.Exec(fmt.Sprintf("GRANT ALL PRIVILEGES ON %s.* TO '%s'@'%%'", os.Getenv("DB_DATABASE"), os.Getenv("DB_USER")))
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, fmt.Sprintf("Failed to grant privileges on %s", os.Getenv("DB_DATABASE")))
	}
	_, err = db.Exec("FLUSH PRIVILEGES")
	if err != nil {
		testContainers.Terminate(t)
		exitWithError(t, err, "Failed to flush privileges")
	}

	return nil
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, image := range images {
		for _, tag := range image.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func exitWithError(t *testing.T, err error, msg string) {
	if t != nil {
		t.Fatalf(msg+": %v", err)
	} else {
		fmt.Printf(msg+": %v\n", err)
		os.Exit(1)
	}
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
