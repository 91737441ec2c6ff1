// Copyright 2026 The ghoaa Authors
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package github

// membersQuery pages through organization members and SAML external
// identities in one request. The two connections advance independently.
const membersQuery = `query MembersView($organization: String!, $membersCursor: String, $extIdsCursor: String) {
  organization(login: $organization) {
    membersWithRole(first: 100, after: $membersCursor) {
      edges {
        role
        hasTwoFactorEnabled
        node {
          id
          databaseId
          login
          name
        }
      }
      pageInfo {
        hasNextPage
        endCursor
      }
    }
    samlIdentityProvider {
      externalIdentities(first: 100, after: $extIdsCursor) {
        edges {
          node {
            samlIdentity {
              nameId
            }
            user {
              id
            }
          }
        }
        pageInfo {
          hasNextPage
          endCursor
        }
      }
    }
  }
}`

// repositoriesQuery pages through organization repositories with the first
// page of each repository's languages.
const repositoriesQuery = `query RepositoriesView($organization: String!, $repositoriesCursor: String) {
  organization(login: $organization) {
    repositories(first: 50, after: $repositoriesCursor) {
      edges {
        node {
          id
          databaseId
          name
          createdAt
          updatedAt
          isFork
          isPrivate
          primaryLanguage {
            name
          }
          languages(first: 100, orderBy: {field: SIZE, direction: DESC}) {
            edges {
              size
              node {
                name
              }
            }
            pageInfo {
              hasNextPage
              endCursor
            }
          }
          description
        }
      }
      pageInfo {
        hasNextPage
        endCursor
      }
    }
  }
}`
