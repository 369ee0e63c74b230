// Package proto holds the generated locksafe.v1 VaultService messages and
// gRPC stubs.
package proto

//go:generate protoc -I ../../api --go_out=../.. --go_opt=module=github.com/dmitrijs2005/locksafe --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/locksafe locksafe/v1/vault.proto
