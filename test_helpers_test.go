package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alc6/histgen/history"
)

const ordersScript = `create table sales.orders (
    id number primary key,
    amount number(10,2) not null
);
/
`

const customersScript = `CREATE TABLE "SALES"."CUSTOMERS"
   (	"CUSTOMER_ID" NUMBER(10,0) NOT NULL ENABLE,
	"NAME" VARCHAR2(100 BYTE),
	 CONSTRAINT "CUSTOMERS_PK" PRIMARY KEY ("CUSTOMER_ID")
   ) SEGMENT CREATION IMMEDIATE
  TABLESPACE "USERS" ;
`

const alterScript = `ALTER TABLE sales.orders ADD (note varchar2(20));`

// writeFixtures creates files below dir, creating parent directories as needed
func writeFixtures(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// memoryWriter is an ArtifactWriter keeping artifacts in memory
type memoryWriter struct {
	WriteFunc func(artifact history.Artifact) (WrittenArtifact, error)

	Artifacts []history.Artifact
}

func (m *memoryWriter) Write(artifact history.Artifact) (WrittenArtifact, error) {
	if m.WriteFunc != nil {
		if written, err := m.WriteFunc(artifact); err != nil {
			return written, err
		}
	}
	m.Artifacts = append(m.Artifacts, artifact)
	return WrittenArtifact{Path: artifact.Path(), Size: len(artifact.SQL), Checksum: checksum(artifact.SQL)}, nil
}

func (m *memoryWriter) Remove(artifact history.Artifact) error {
	for i, a := range m.Artifacts {
		if a.Path() == artifact.Path() {
			m.Artifacts = append(m.Artifacts[:i], m.Artifacts[i+1:]...)
			return nil
		}
	}
	return nil
}
